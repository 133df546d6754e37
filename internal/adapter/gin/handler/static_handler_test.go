package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func setupStatic(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	parent := t.TempDir()
	root := filepath.Join(parent, "public")

	writeFile(t, root, "index.html", "<h1>users</h1>")
	writeFile(t, root, "js/app.js", "console.log('app')")
	writeFile(t, root, "docs/index.html", "<h1>docs</h1>")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	writeFile(t, parent, "secret.txt", "do not serve")

	r := gin.New()
	r.NoRoute(NewStaticHandler(root, zaptest.NewLogger(t)).Serve)
	return r, root
}

func TestStaticHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		body        string
		contentType string
	}{
		{name: "root serves index", method: http.MethodGet, path: "/", status: http.StatusOK, body: "<h1>users</h1>", contentType: "text/html"},
		{name: "nested file", method: http.MethodGet, path: "/js/app.js", status: http.StatusOK, body: "console.log('app')", contentType: "javascript"},
		{name: "directory index", method: http.MethodGet, path: "/docs/", status: http.StatusOK, body: "<h1>docs</h1>"},
		{name: "index by name", method: http.MethodGet, path: "/index.html", status: http.StatusOK, body: "<h1>users</h1>", contentType: "text/html"},
		{name: "nested index by name", method: http.MethodGet, path: "/docs/index.html", status: http.StatusOK, body: "<h1>docs</h1>"},
		{name: "dot segments inside root", method: http.MethodGet, path: "/js/../index.html", status: http.StatusOK, body: "<h1>users</h1>"},
		{name: "head serves headers only", method: http.MethodHead, path: "/js/app.js", status: http.StatusOK, contentType: "javascript"},
		{name: "missing file", method: http.MethodGet, path: "/nope.css", status: http.StatusNotFound},
		{name: "directory without index", method: http.MethodGet, path: "/empty/", status: http.StatusNotFound},
		{name: "traversal stays in root", method: http.MethodGet, path: "/../secret.txt", status: http.StatusNotFound},
		{name: "post is not served", method: http.MethodPost, path: "/index.html", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupStatic(t)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
			if tt.contentType != "" {
				assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			}
			if tt.status == http.StatusNotFound {
				assert.Equal(t, "not_found", decodeError(t, w).Error)
			}
		})
	}
}

func TestStaticHandler_Resolve(t *testing.T) {
	_, root := setupStatic(t)
	h := NewStaticHandler(root, zaptest.NewLogger(t))

	name, ok := h.resolve("/")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "index.html"), name)

	name, ok = h.resolve("/js/../js/app.js")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "js", "app.js"), name)

	_, ok = h.resolve("/../../secret.txt")
	assert.False(t, ok)
}
