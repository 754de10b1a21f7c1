package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

type adminRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB, logger *zap.Logger) *adminRepository {
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves every administrator account
func (r *adminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := `
		SELECT account
		FROM admins
		ORDER BY account
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query admins", zap.Error(err))
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.Account); err != nil {
			r.logger.Error("failed to scan admin row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating admin rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}

	return admins, nil
}

// Create inserts a new administrator account
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `INSERT INTO admins (account, password_hash) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, admin.Account, admin.PasswordHash)
	if err != nil {
		r.logger.Error("failed to create admin", zap.Error(err), zap.String("account", admin.Account))
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// UpdatePassword changes the password hash of an existing account
func (r *adminRepository) UpdatePassword(ctx context.Context, account, passwordHash string) error {
	query := `UPDATE admins SET password_hash = ? WHERE account = ?`

	result, err := r.db.ExecContext(ctx, query, passwordHash, account)
	if err != nil {
		r.logger.Error("failed to update admin password", zap.Error(err), zap.String("account", account))
		return fmt.Errorf("failed to update admin password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}

	return nil
}

// Delete removes an administrator account
func (r *adminRepository) Delete(ctx context.Context, account string) error {
	query := `DELETE FROM admins WHERE account = ?`

	result, err := r.db.ExecContext(ctx, query, account)
	if err != nil {
		r.logger.Error("failed to delete admin", zap.Error(err), zap.String("account", account))
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}

	return nil
}
