package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// WordService defines the interface for word service operations
type WordService interface {
	List(ctx context.Context, section models.WordSection) ([]models.Word, error)
	Create(ctx context.Context, section models.WordSection, word *models.Word) error
	Update(ctx context.Context, id string, req *models.UpdateWordRequest) error
}

// WordHandler handles word-related HTTP requests
type WordHandler struct {
	BaseHandler
	wordService WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(wordService WordService, logger *zap.Logger) *WordHandler {
	return &WordHandler{
		BaseHandler: BaseHandler{Logger: logger},
		wordService: wordService,
	}
}

// RegisterRoutes registers all word handler routes
func (h *WordHandler) RegisterRoutes(r chi.Router) {
	r.Route("/homewords", func(r chi.Router) {
		r.Get("/", h.listWords(models.WordSectionHome))
		r.Post("/", h.createWord(models.WordSectionHome))
		r.Put("/{id}", h.UpdateWord)
	})
	r.Route("/experiencewords", func(r chi.Router) {
		r.Get("/", h.listWords(models.WordSectionExperience))
		r.Post("/", h.createWord(models.WordSectionExperience))
		r.Put("/{id}", h.UpdateWord)
	})
}

// listWords handles GET /api/homewords and GET /api/experiencewords
// @Summary List words
// @Description Retrieve all text blocks of a page section
// @Tags words
// @Produce json
// @Success 200 {object} map[string][]models.Word
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /homewords [get]
func (h *WordHandler) listWords(section models.WordSection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words, err := h.wordService.List(r.Context(), section)
		if err != nil {
			h.Logger.Error("failed to list words", zap.Error(err), zap.String("section", string(section)))
			h.RespondError(w, http.StatusInternalServerError, "failed to list words")
			return
		}

		h.RespondJSON(w, http.StatusOK, map[string][]models.Word{"words": words})
	}
}

// createWord handles POST /api/homewords and POST /api/experiencewords
// @Summary Create word
// @Description Store a new text block with a client-generated ID
// @Tags words
// @Accept json
// @Produce json
// @Param word body models.Word true "Word to create"
// @Success 201 {object} models.Word
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /homewords [post]
func (h *WordHandler) createWord(section models.WordSection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var word models.Word
		if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := h.wordService.Create(r.Context(), section, &word); err != nil {
			if strings.Contains(err.Error(), "required") {
				h.RespondError(w, http.StatusBadRequest, err.Error())
				return
			}
			h.Logger.Error("failed to create word", zap.Error(err), zap.String("section", string(section)))
			h.RespondError(w, http.StatusInternalServerError, "failed to create word")
			return
		}

		h.RespondJSON(w, http.StatusCreated, word)
	}
}

// UpdateWord handles PUT /api/homewords/{id} and PUT /api/experiencewords/{id}
// @Summary Update word
// @Description Replace the title and description of an existing text block
// @Tags words
// @Accept json
// @Produce json
// @Param id path string true "Word ID"
// @Param word body models.UpdateWordRequest true "New title and description"
// @Success 204 "Word updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Word not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /homewords/{id} [put]
func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.wordService.Update(r.Context(), id, &req); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.RespondError(w, http.StatusNotFound, "word not found")
			return
		}
		if strings.Contains(err.Error(), "required") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to update word", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to update word")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
