package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// SPAHandler serves the built front end from dir. Paths that name an
// existing regular file are served as is; everything else gets index.html
// so client-side routing can take over.
type SPAHandler struct {
	dir string
}

// NewSPAHandler creates a handler serving files under dir.
func NewSPAHandler(dir string) *SPAHandler {
	return &SPAHandler{dir: dir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	// path.Clean on a rooted path cannot climb above dir
	rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if rel != "" && h.serveFile(w, r, rel) {
		return
	}

	if !h.serveFile(w, r, indexFile) {
		http.NotFound(w, r)
	}
}

// serveFile writes dir/rel if it is a regular file and reports whether it did.
func (h *SPAHandler) serveFile(w http.ResponseWriter, r *http.Request, rel string) bool {
	f, err := os.Open(filepath.Join(h.dir, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
