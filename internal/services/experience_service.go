package services

import (
	"context"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/i18n"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ExperienceRepository defines the interface for experience data access
type ExperienceRepository interface {
	ProjectSummaries(ctx context.Context) ([]models.ExperienceSummary, error)
	ProfessionalSummaries(ctx context.Context) ([]models.ExperienceSummary, error)
	ProjectByID(ctx context.Context, id int) (*models.Experience, error)
	ProfessionalByID(ctx context.Context, id int) (*models.Experience, error)
}

// ExperienceService handles business logic for projects and professional
// experience entries, including localized rendering of detail text
type ExperienceService struct {
	repo       ExperienceRepository
	translator Translator
	logger     *zap.Logger
}

// NewExperienceService creates a new experience service
func NewExperienceService(repo ExperienceRepository, translator Translator, logger *zap.Logger) *ExperienceService {
	return &ExperienceService{
		repo:       repo,
		translator: translator,
		logger:     logger,
	}
}

// ProjectSummaries retrieves the listing view of every project
func (s *ExperienceService) ProjectSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	summaries, err := s.repo.ProjectSummaries(ctx)
	if err != nil {
		s.logger.Error("failed to get project summaries", zap.Error(err))
		return nil, fmt.Errorf("failed to get project summaries: %w", err)
	}
	if summaries == nil {
		summaries = []models.ExperienceSummary{}
	}
	return summaries, nil
}

// ProfessionalSummaries retrieves the listing view of every professional entry
func (s *ExperienceService) ProfessionalSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	summaries, err := s.repo.ProfessionalSummaries(ctx)
	if err != nil {
		s.logger.Error("failed to get professional summaries", zap.Error(err))
		return nil, fmt.Errorf("failed to get professional summaries: %w", err)
	}
	if summaries == nil {
		summaries = []models.ExperienceSummary{}
	}
	return summaries, nil
}

// ProjectByID retrieves one project, with title and description rendered in
// the requested locale
func (s *ExperienceService) ProjectByID(ctx context.Context, id int, locale string) (*models.Experience, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid project id")
	}

	project, err := s.repo.ProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.localize(ctx, project, locale)
	return project, nil
}

// ProfessionalByID retrieves one professional entry, with title and
// description rendered in the requested locale
func (s *ExperienceService) ProfessionalByID(ctx context.Context, id int, locale string) (*models.Experience, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid professional id")
	}

	entry, err := s.repo.ProfessionalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.localize(ctx, entry, locale)
	return entry, nil
}

// localize translates the free-text fields for non-default locales. The
// translator falls back to the stored text, so localization never fails.
func (s *ExperienceService) localize(ctx context.Context, e *models.Experience, locale string) {
	if locale == "" || locale == string(i18n.DefaultLocale) || !i18n.IsSupported(locale) {
		return
	}

	source := string(i18n.DefaultLocale)
	e.Title = s.translator.Translate(ctx, e.Title, source, locale)
	e.Description = s.translator.Translate(ctx, e.Description, source, locale)
}
