// Package repositories implements data access over the MySQL store
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

type mediaRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMediaRepository creates a new media metadata repository
func NewMediaRepository(db *sql.DB, logger *zap.Logger) *mediaRepository {
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new media metadata record
func (r *mediaRepository) Create(ctx context.Context, file *models.MediaFile) error {
	query := `
		INSERT INTO media (name, path, content_type, size, category)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		file.Name,
		file.Path,
		file.ContentType,
		file.Size,
		file.Category,
	)
	if err != nil {
		r.logger.Error("failed to create media record", zap.Error(err), zap.String("name", file.Name))
		return fmt.Errorf("failed to create media record: %w", err)
	}

	return nil
}

// ListByCategory retrieves every media record of a category, newest first
func (r *mediaRepository) ListByCategory(ctx context.Context, category models.MediaCategory) ([]models.MediaFile, error) {
	query := `
		SELECT name, path, content_type, size, category
		FROM media
		WHERE category = ?
		ORDER BY name DESC
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		r.logger.Error("failed to query media", zap.Error(err), zap.String("category", string(category)))
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	var files []models.MediaFile
	for rows.Next() {
		var f models.MediaFile
		if err := rows.Scan(&f.Name, &f.Path, &f.ContentType, &f.Size, &f.Category); err != nil {
			r.logger.Error("failed to scan media row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan media row: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating media rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating media rows: %w", err)
	}

	return files, nil
}

// GetByName retrieves one media record by its server-assigned name
func (r *mediaRepository) GetByName(ctx context.Context, category models.MediaCategory, name string) (*models.MediaFile, error) {
	query := `
		SELECT path, content_type, size
		FROM media
		WHERE category = ? AND name = ?
		LIMIT 1
	`

	file := &models.MediaFile{Name: name, Category: category}
	err := r.db.QueryRowContext(ctx, query, category, name).Scan(
		&file.Path,
		&file.ContentType,
		&file.Size,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("media not found")
	}
	if err != nil {
		r.logger.Error("failed to get media by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to get media by name: %w", err)
	}

	return file, nil
}

// DeleteByName deletes a media record by name. Deleting an absent name is
// not an error; the record is simply already gone.
func (r *mediaRepository) DeleteByName(ctx context.Context, category models.MediaCategory, name string) error {
	query := `DELETE FROM media WHERE category = ? AND name = ?`

	_, err := r.db.ExecContext(ctx, query, category, name)
	if err != nil {
		r.logger.Error("failed to delete media record", zap.Error(err), zap.String("name", name))
		return fmt.Errorf("failed to delete media record: %w", err)
	}

	return nil
}
