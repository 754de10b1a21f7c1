package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPublicDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestPagesHandler_ServePage(t *testing.T) {
	t.Run("serves an exported page", func(t *testing.T) {
		dir := setupPublicDir(t, map[string]string{
			"en/about.html": "<h1>About</h1>",
		})
		handler := NewPagesHandler(dir, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/en/about", nil)
		rec := httptest.NewRecorder()
		handler.ServePage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<h1>About</h1>", rec.Body.String())
	})

	t.Run("serves a directory index", func(t *testing.T) {
		dir := setupPublicDir(t, map[string]string{
			"en/index.html": "<h1>Home</h1>",
		})
		handler := NewPagesHandler(dir, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/en", nil)
		rec := httptest.NewRecorder()
		handler.ServePage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<h1>Home</h1>", rec.Body.String())
	})

	t.Run("traversal cannot escape the public directory", func(t *testing.T) {
		parent := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.html"), []byte("secret"), 0o644))
		dir := filepath.Join(parent, "public")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		handler := NewPagesHandler(dir, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/../secret", nil)
		rec := httptest.NewRecorder()
		handler.ServePage(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("missing page serves the locale's 404", func(t *testing.T) {
		dir := setupPublicDir(t, map[string]string{
			"404.html":    "not found",
			"zh/404.html": "未找到",
		})
		handler := NewPagesHandler(dir, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/zh/missing", nil)
		rec := httptest.NewRecorder()
		handler.ServePage(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "未找到", rec.Body.String())
	})

	t.Run("missing localized 404 falls back to the root one", func(t *testing.T) {
		dir := setupPublicDir(t, map[string]string{
			"404.html": "not found",
		})
		handler := NewPagesHandler(dir, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/zh/missing", nil)
		rec := httptest.NewRecorder()
		handler.ServePage(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", rec.Body.String())
	})
}
