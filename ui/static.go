package ui

import (
	"net/http"
	"path"
	"strings"
)

// staticHandler is http.FileServer except that explicit requests for an
// index.html file are answered directly instead of redirected to the
// directory.
type staticHandler struct {
	root  http.FileSystem
	files http.Handler
}

func newStaticHandler(root http.FileSystem) *staticHandler {
	return &staticHandler{root: root, files: http.FileServer(root)}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/index.html") {
		h.files.ServeHTTP(w, r)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	f, err := h.root.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
