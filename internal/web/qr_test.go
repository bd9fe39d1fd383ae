package web

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQRHandler(t *testing.T) {
	mux := NewDefaultMux("", Deps{})

	resp, body := doRequest(t, mux, http.MethodGet, "/qr?topic=Regression&exam=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())

	resp, body = doRequest(t, mux, http.MethodGet, "/qr?size=128")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	img, err = png.Decode(bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())
}

func TestQRHandlerErrors(t *testing.T) {
	mux := NewDefaultMux("", Deps{})

	resp, _ := doRequest(t, mux, http.MethodGet, "/qr?size=big")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, mux, http.MethodPost, "/qr")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPublicBase(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://quiz.local:5000/qr", nil)
	require.Equal(t, "http://quiz.local:5000", publicBase(req, ""))

	req.Header.Set("X-Forwarded-Proto", "https")
	require.Equal(t, "https://quiz.local:5000", publicBase(req, ""))

	require.Equal(t, "https://exam.example.org", publicBase(req, "https://exam.example.org/"))
}

func TestQuizURL(t *testing.T) {
	require.Equal(t, "http://h/quiz", quizURL("http://h", "", ""))
	require.Equal(t, "http://h/quiz?exam=2&topic=Assignment+8%3A+Conditional+Probability",
		quizURL("http://h", "Assignment 8: Conditional Probability", "2"))
}
