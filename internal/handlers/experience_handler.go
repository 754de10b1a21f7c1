package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ExperienceService defines the interface for experience service operations
type ExperienceService interface {
	ProjectSummaries(ctx context.Context) ([]models.ExperienceSummary, error)
	ProfessionalSummaries(ctx context.Context) ([]models.ExperienceSummary, error)
	ProjectByID(ctx context.Context, id int, locale string) (*models.Experience, error)
	ProfessionalByID(ctx context.Context, id int, locale string) (*models.Experience, error)
}

// ExperienceHandler handles project and professional experience HTTP requests
type ExperienceHandler struct {
	BaseHandler
	experienceService ExperienceService
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(experienceService ExperienceService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		experienceService: experienceService,
	}
}

// RegisterRoutes registers all experience handler routes
func (h *ExperienceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/summaries", h.ListProjectSummaries)
		r.Get("/{id}", h.GetProject)
	})
	r.Route("/professionals", func(r chi.Router) {
		r.Get("/summaries", h.ListProfessionalSummaries)
		r.Get("/{id}", h.GetProfessional)
	})
}

// ListProjectSummaries handles GET /api/projects/summaries
// @Summary List project summaries
// @Description Retrieve the listing fields of every project
// @Tags experiences
// @Produce json
// @Success 200 {array} models.ExperienceSummary
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/summaries [get]
func (h *ExperienceHandler) ListProjectSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.experienceService.ProjectSummaries(r.Context())
	if err != nil {
		h.Logger.Error("failed to list project summaries", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	h.RespondJSON(w, http.StatusOK, summaries)
}

// GetProject handles GET /api/projects/{id}
// @Summary Get project
// @Description Retrieve a full project record, optionally translated via the locale query parameter
// @Tags experiences
// @Produce json
// @Param id path int true "Project ID"
// @Param locale query string false "Target locale"
// @Success 200 {object} models.Experience
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [get]
func (h *ExperienceHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	h.getExperience(w, r, h.experienceService.ProjectByID)
}

// ListProfessionalSummaries handles GET /api/professionals/summaries
// @Summary List professional experience summaries
// @Description Retrieve the listing fields of every professional experience
// @Tags experiences
// @Produce json
// @Success 200 {array} models.ExperienceSummary
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /professionals/summaries [get]
func (h *ExperienceHandler) ListProfessionalSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.experienceService.ProfessionalSummaries(r.Context())
	if err != nil {
		h.Logger.Error("failed to list professional summaries", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list professionals")
		return
	}

	h.RespondJSON(w, http.StatusOK, summaries)
}

// GetProfessional handles GET /api/professionals/{id}
// @Summary Get professional experience
// @Description Retrieve a full professional experience record, optionally translated via the locale query parameter
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Param locale query string false "Target locale"
// @Success 200 {object} models.Experience
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Experience not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /professionals/{id} [get]
func (h *ExperienceHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	h.getExperience(w, r, h.experienceService.ProfessionalByID)
}

func (h *ExperienceHandler) getExperience(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, id int, locale string) (*models.Experience, error)) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	locale := r.URL.Query().Get("locale")

	entry, err := fetch(r.Context(), id, locale)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.RespondError(w, http.StatusNotFound, "experience not found")
			return
		}
		if strings.Contains(err.Error(), "invalid") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to get experience", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get experience")
		return
	}

	h.RespondJSON(w, http.StatusOK, entry)
}
