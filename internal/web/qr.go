package web

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mathexam/mathexam/internal/render"
)

// handleQR serves a PNG QR code pointing at the quiz page for the given
// topic and exam, so the quiz can be continued on a phone.
func handleQR(w http.ResponseWriter, r *http.Request, deps Deps) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	size := 0
	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "size must be an integer", http.StatusBadRequest)
			return
		}
		size = parsed
	}

	target := quizURL(publicBase(r, deps.PublicURL), query.Get("topic"), query.Get("exam"))

	var buf bytes.Buffer
	if err := render.EncodeQRCodePNG(&buf, target, size); err != nil {
		deps.Logger.Errorf("web", "qr for %s: %v", target, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = buf.WriteTo(w)
}

// publicBase returns the scheme and host clients reach the server at.
func publicBase(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return scheme + "://" + host
}

func quizURL(base, topic, exam string) string {
	values := url.Values{}
	if topic != "" {
		values.Set("topic", topic)
	}
	if exam != "" {
		values.Set("exam", exam)
	}
	if len(values) == 0 {
		return base + "/quiz"
	}
	return base + "/quiz?" + values.Encode()
}
