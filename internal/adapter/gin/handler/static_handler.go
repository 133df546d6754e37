package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	apperrors "user-directory-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const indexFile = "index.html"

// StaticHandler serves the front-end bundle for every request no route matched
type StaticHandler struct {
	root string
	log  *zap.Logger
}

// NewStaticHandler creates a StaticHandler rooted at dir
func NewStaticHandler(dir string, log *zap.Logger) *StaticHandler {
	return &StaticHandler{root: dir, log: log}
}

// Serve handles GET/HEAD for any unmatched path. Directories resolve to
// their index.html; everything else that is not a regular file is a 404.
func (h *StaticHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		writeError(c, apperrors.ErrNotFound)
		return
	}

	name, ok := h.resolve(c.Request.URL.Path)
	if !ok {
		h.log.Debug("static file not found", zap.String("path", c.Request.URL.Path))
		writeError(c, apperrors.ErrNotFound)
		return
	}

	f, err := os.Open(name)
	if err != nil {
		h.log.Warn("static file unreadable", zap.String("path", name), zap.Error(err))
		writeError(c, apperrors.ErrNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeError(c, apperrors.ErrNotFound)
		return
	}

	// resolve has already confined name to root
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// resolve maps a URL path onto a regular file below root. The path is
// cleaned as an absolute path first so ".." can never climb above root.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	full := filepath.Join(h.root, filepath.FromSlash(clean))

	info, err := os.Stat(full)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		full = filepath.Join(full, indexFile)
		if info, err = os.Stat(full); err != nil {
			return "", false
		}
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	return full, true
}
