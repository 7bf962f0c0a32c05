package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPA serves the client bundle. Paths that do not match a file fall back to
// index.html so the single-page app owns routing.
func SPA(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/")))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
