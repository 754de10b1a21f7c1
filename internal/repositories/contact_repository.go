package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

type contactRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB, logger *zap.Logger) *contactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves every contact entry
func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, phone, email, linkedin, github
		FROM contact
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query contact entries", zap.Error(err))
		return nil, fmt.Errorf("failed to query contact entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Phone, &c.Email, &c.LinkedIn, &c.GitHub); err != nil {
			r.logger.Error("failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating contact rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return entries, nil
}

// Create inserts a new contact entry
func (r *contactRepository) Create(ctx context.Context, entry *models.Contact) error {
	query := `
		INSERT INTO contact (id, phone, email, linkedin, github)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.Phone, entry.Email, entry.LinkedIn, entry.GitHub)
	if err != nil {
		r.logger.Error("failed to create contact entry", zap.Error(err), zap.String("id", entry.ID))
		return fmt.Errorf("failed to create contact entry: %w", err)
	}

	return nil
}

// Update changes an existing contact entry
func (r *contactRepository) Update(ctx context.Context, id string, req *models.UpdateContactRequest) error {
	query := `UPDATE contact SET phone = ?, email = ?, linkedin = ?, github = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, req.Phone, req.Email, req.LinkedIn, req.GitHub, id)
	if err != nil {
		r.logger.Error("failed to update contact entry", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update contact entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("contact entry not found")
	}

	return nil
}
