package services

import (
	"context"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// WordRepository defines the interface for word data access
type WordRepository interface {
	ListBySection(ctx context.Context, section models.WordSection) ([]models.Word, error)
	Create(ctx context.Context, section models.WordSection, word *models.Word) error
	Update(ctx context.Context, id, title, description string) error
}

// WordService handles business logic for the per-page word records
type WordService struct {
	repo   WordRepository
	logger *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(repo WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves the word records of a section
func (s *WordService) List(ctx context.Context, section models.WordSection) ([]models.Word, error) {
	if err := validateSection(section); err != nil {
		return nil, err
	}

	words, err := s.repo.ListBySection(ctx, section)
	if err != nil {
		s.logger.Error("failed to list words", zap.Error(err), zap.String("section", string(section)))
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	if words == nil {
		words = []models.Word{}
	}
	return words, nil
}

// Create stores a new word record. The client generates the identifier, so
// the full record including id is required.
func (s *WordService) Create(ctx context.Context, section models.WordSection, word *models.Word) error {
	if err := validateSection(section); err != nil {
		return err
	}
	if word.ID == "" {
		return fmt.Errorf("word id is required")
	}
	if word.Title == "" || word.Description == "" {
		return fmt.Errorf("title and description are required")
	}

	if err := s.repo.Create(ctx, section, word); err != nil {
		s.logger.Error("failed to create word", zap.Error(err), zap.String("id", word.ID))
		return fmt.Errorf("failed to create word: %w", err)
	}

	return nil
}

// Update changes the title and description of an existing word record
func (s *WordService) Update(ctx context.Context, id string, req *models.UpdateWordRequest) error {
	if id == "" {
		return fmt.Errorf("word id is required")
	}
	if req.Title == "" || req.Description == "" {
		return fmt.Errorf("title and description are required")
	}

	if err := s.repo.Update(ctx, id, req.Title, req.Description); err != nil {
		s.logger.Error("failed to update word", zap.Error(err), zap.String("id", id))
		return err
	}

	return nil
}

func validateSection(section models.WordSection) error {
	switch section {
	case models.WordSectionHome, models.WordSectionExperience:
		return nil
	default:
		return fmt.Errorf("invalid word section: %s", section)
	}
}
