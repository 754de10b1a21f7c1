package services

import (
	"context"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	UpdatePassword(ctx context.Context, account, passwordHash string) error
	Delete(ctx context.Context, account string) error
}

const minPasswordLength = 8

// AdminService handles business logic for administrator accounts
type AdminService struct {
	repo   AdminRepository
	logger *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repo AdminRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves every administrator account (accounts only, no hashes)
func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list admins", zap.Error(err))
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	if admins == nil {
		admins = []models.Admin{}
	}
	return admins, nil
}

// Create stores a new administrator account with a bcrypt password hash
func (s *AdminService) Create(ctx context.Context, req *models.CreateAdminRequest) error {
	if req.Account == "" {
		return fmt.Errorf("account is required")
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Account:      req.Account,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		s.logger.Error("failed to create admin", zap.Error(err), zap.String("account", req.Account))
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// UpdatePassword changes the password of an existing account
func (s *AdminService) UpdatePassword(ctx context.Context, account, password string) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, account, string(hash)); err != nil {
		s.logger.Error("failed to update admin password", zap.Error(err), zap.String("account", account))
		return err
	}

	return nil
}

// Delete removes an administrator account
func (s *AdminService) Delete(ctx context.Context, account string) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}

	if err := s.repo.Delete(ctx, account); err != nil {
		s.logger.Error("failed to delete admin", zap.Error(err), zap.String("account", account))
		return err
	}

	return nil
}
