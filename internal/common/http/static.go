package http

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrStaticDirMissing = errors.New("static directory not found")

// StaticHandler serves the built client from dir. Unknown paths fall back to
// index.html so client-side routes resolve; unknown /api paths get a JSON 404.
func StaticHandler(dir string) (http.Handler, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrStaticDirMissing, dir)
	}

	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			WriteErrorEnvelope(w, http.StatusNotFound, CodeNotFound, "Not found", nil, TraceIDFromContext(r.Context()))
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil, "")
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" {
			if fi, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean))); err == nil && !fi.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}

		http.ServeFile(w, r, index)
	}), nil
}

// APINotFoundHandler answers every request with a JSON 404. It stands in for
// StaticHandler when no client build is present.
func APINotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteErrorEnvelope(w, http.StatusNotFound, CodeNotFound, "Not found", nil, TraceIDFromContext(r.Context()))
	})
}
