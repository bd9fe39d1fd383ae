package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/mathexam/mathexam/internal/assets"
)

// layeredFS opens a name from the first layer that has it.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	for _, layer := range l {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ServiceWorkerFile is served from the site root so its scope covers the
// pages, not just /static/.
const ServiceWorkerFile = "service-worker.js"

func staticLayers(dir string) layeredFS {
	layers := layeredFS{}
	if dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			layers = append(layers, os.DirFS(dir))
		}
	}
	return append(layers, assets.Static)
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// StaticHandler serves files from dir, then from the embedded assets.
// A missing or empty dir serves only the embedded assets.
func StaticHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.FS(staticLayers(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		// Clean path to avoid oddities.
		r.URL.Path = path.Clean("/" + r.URL.Path)
		fileServer.ServeHTTP(w, r)
	})
}

// ServiceWorkerHandler serves the offline cache worker at /service-worker.js.
func ServiceWorkerHandler(dir string) http.Handler {
	layers := staticLayers(dir)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		w.Header().Set("Service-Worker-Allowed", "/")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, layers, ServiceWorkerFile)
	})
}
