package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticEmbedded(t *testing.T) {
	mux := NewDefaultMux("", Deps{})

	resp, body := doRequest(t, mux, http.MethodGet, "/static/style.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	require.Contains(t, body, ".mascot")

	resp, _ = doRequest(t, mux, http.MethodGet, "/static/mascot.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, mux, http.MethodGet, "/static/mascot_idle_1.png")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticDirOverlaysEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mascot_idle_1.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))
	mux := NewDefaultMux(dir, Deps{})

	resp, body := doRequest(t, mux, http.MethodGet, "/static/mascot_idle_1.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "png", body)

	_, body = doRequest(t, mux, http.MethodGet, "/static/style.css")
	require.Equal(t, "body{}", body)

	resp, _ = doRequest(t, mux, http.MethodGet, "/static/mascot.js")
	require.Equal(t, http.StatusOK, resp.StatusCode, "embedded files still served")
}

func TestStaticMissingDirFallsBack(t *testing.T) {
	mux := NewDefaultMux(filepath.Join(t.TempDir(), "absent"), Deps{})

	resp, _ := doRequest(t, mux, http.MethodGet, "/static/style.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, mux, http.MethodDelete, "/static/style.css")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServiceWorkerServedFromRoot(t *testing.T) {
	mux := NewDefaultMux("", Deps{})

	resp, body := doRequest(t, mux, http.MethodGet, "/service-worker.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	require.Equal(t, "/", resp.Header.Get("Service-Worker-Allowed"))
	require.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	require.Contains(t, body, "/static/mascot_correct_1.png")

	resp, _ = doRequest(t, mux, http.MethodPost, "/service-worker.js")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServiceWorkerOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ServiceWorkerFile), []byte("// local"), 0o644))

	_, body := doRequest(t, NewDefaultMux(dir, Deps{}), http.MethodGet, "/service-worker.js")
	require.Equal(t, "// local", body)
}
