package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/wuwarren/portfolio-backend/internal/i18n"
	"go.uber.org/zap"
)

// PagesHandler serves the exported frontend pages and assets
type PagesHandler struct {
	BaseHandler
	publicDir string
}

// NewPagesHandler creates a new pages handler rooted at publicDir
func NewPagesHandler(publicDir string, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		BaseHandler: BaseHandler{Logger: logger},
		publicDir:   publicDir,
	}
}

// ServePage serves a page or asset from the public directory. Locale
// normalization happens in the redirect middleware before this runs.
func (h *PagesHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	// Reject path traversal outside the public directory
	cleaned := filepath.Clean(r.URL.Path)
	if strings.Contains(cleaned, "..") {
		h.RespondError(w, http.StatusBadRequest, "invalid path")
		return
	}

	target := filepath.Join(h.publicDir, cleaned)

	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		target = filepath.Join(target, "index.html")
		info, err = os.Stat(target)
	}
	if err != nil && filepath.Ext(target) == "" {
		target += ".html"
		info, err = os.Stat(target)
	}
	if err != nil || info.IsDir() {
		h.serveNotFound(w, r)
		return
	}

	http.ServeFile(w, r, target)
}

// serveNotFound serves the localized 404 page for the request's locale,
// falling back to the root 404 page when no localized one is exported.
func (h *PagesHandler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	locale := i18n.PathLocale(r.URL.Path)
	page, err := os.ReadFile(filepath.Join(h.publicDir, string(locale), "404.html"))
	if err != nil {
		page, err = os.ReadFile(filepath.Join(h.publicDir, "404.html"))
	}
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(page)
}
