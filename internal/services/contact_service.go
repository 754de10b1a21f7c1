package services

import (
	"context"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, entry *models.Contact) error
	Update(ctx context.Context, id string, req *models.UpdateContactRequest) error
}

// ContactService handles business logic for contact entries
type ContactService struct {
	repo   ContactRepository
	logger *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves every contact entry
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list contact entries", zap.Error(err))
		return nil, fmt.Errorf("failed to list contact entries: %w", err)
	}

	if entries == nil {
		entries = []models.Contact{}
	}
	return entries, nil
}

// Create stores a new contact entry
func (s *ContactService) Create(ctx context.Context, entry *models.Contact) error {
	if entry.ID == "" {
		return fmt.Errorf("contact id is required")
	}
	if entry.Email == "" {
		return fmt.Errorf("email is required")
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to create contact entry", zap.Error(err), zap.String("id", entry.ID))
		return fmt.Errorf("failed to create contact entry: %w", err)
	}

	return nil
}

// Update changes an existing contact entry
func (s *ContactService) Update(ctx context.Context, id string, req *models.UpdateContactRequest) error {
	if id == "" {
		return fmt.Errorf("contact id is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		s.logger.Error("failed to update contact entry", zap.Error(err), zap.String("id", id))
		return err
	}

	return nil
}
