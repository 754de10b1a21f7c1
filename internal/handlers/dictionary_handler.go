package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wuwarren/portfolio-backend/internal/i18n"
	"go.uber.org/zap"
)

// DictionaryHandler serves the UI text catalogs to the frontend
type DictionaryHandler struct {
	BaseHandler
	dictionaries *i18n.Dictionaries
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaries *i18n.Dictionaries, logger *zap.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		dictionaries: dictionaries,
	}
}

// RegisterRoutes registers all dictionary handler routes
func (h *DictionaryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dictionary/{locale}", h.GetDictionary)
}

// GetDictionary handles GET /api/dictionary/{locale}
// @Summary Get UI dictionary
// @Description Retrieve the UI text catalog for a locale. An unsupported locale yields the default locale's catalog.
// @Tags dictionary
// @Produce json
// @Param locale path string true "Locale code" Enums(en, zh)
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dictionary/{locale} [get]
func (h *DictionaryHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Locale(chi.URLParam(r, "locale"))

	dict, err := h.dictionaries.Get(locale)
	if err != nil {
		h.Logger.Error("failed to load dictionary", zap.Error(err), zap.String("locale", string(locale)))
		h.RespondError(w, http.StatusInternalServerError, "failed to load dictionary")
		return
	}

	h.RespondJSON(w, http.StatusOK, dict)
}
