package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

type wordRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *sql.DB, logger *zap.Logger) *wordRepository {
	return &wordRepository{
		db:     db,
		logger: logger,
	}
}

// ListBySection retrieves the word records of one page section
func (r *wordRepository) ListBySection(ctx context.Context, section models.WordSection) ([]models.Word, error) {
	query := `
		SELECT id, title, description
		FROM words
		WHERE section = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, section)
	if err != nil {
		r.logger.Error("failed to query words", zap.Error(err), zap.String("section", string(section)))
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.Title, &w.Description); err != nil {
			r.logger.Error("failed to scan word row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating word rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating word rows: %w", err)
	}

	return words, nil
}

// Create inserts a new word record
func (r *wordRepository) Create(ctx context.Context, section models.WordSection, word *models.Word) error {
	query := `
		INSERT INTO words (id, section, title, description)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, word.ID, section, word.Title, word.Description)
	if err != nil {
		r.logger.Error("failed to create word", zap.Error(err), zap.String("id", word.ID))
		return fmt.Errorf("failed to create word: %w", err)
	}

	return nil
}

// Update changes the title and description of an existing word record
func (r *wordRepository) Update(ctx context.Context, id, title, description string) error {
	query := `UPDATE words SET title = ?, description = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, title, description, id)
	if err != nil {
		r.logger.Error("failed to update word", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("word not found")
	}

	return nil
}
