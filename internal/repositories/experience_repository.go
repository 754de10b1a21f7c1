package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// Experience entries live in two tables with identical schemas, one per kind.
// The table name is always taken from this fixed mapping, never from input.
const (
	tableProjects      = "projects"
	tableProfessionals = "professionals"
)

type experienceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewExperienceRepository creates a repository over the projects and
// professionals tables
func NewExperienceRepository(db *sql.DB, logger *zap.Logger) *experienceRepository {
	return &experienceRepository{
		db:     db,
		logger: logger,
	}
}

// ProjectSummaries retrieves the listing view of every project
func (r *experienceRepository) ProjectSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	return r.summaries(ctx, tableProjects)
}

// ProfessionalSummaries retrieves the listing view of every professional entry
func (r *experienceRepository) ProfessionalSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	return r.summaries(ctx, tableProfessionals)
}

// ProjectByID retrieves one project with all fields
func (r *experienceRepository) ProjectByID(ctx context.Context, id int) (*models.Experience, error) {
	return r.byID(ctx, tableProjects, id)
}

// ProfessionalByID retrieves one professional entry with all fields
func (r *experienceRepository) ProfessionalByID(ctx context.Context, id int) (*models.Experience, error) {
	return r.byID(ctx, tableProfessionals, id)
}

func (r *experienceRepository) summaries(ctx context.Context, table string) ([]models.ExperienceSummary, error) {
	query := fmt.Sprintf(`
		SELECT id, title, start_time, end_time, media
		FROM %s
		ORDER BY id
	`, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query summaries", zap.Error(err), zap.String("table", table))
		return nil, fmt.Errorf("failed to query %s summaries: %w", table, err)
	}
	defer rows.Close()

	var summaries []models.ExperienceSummary
	for rows.Next() {
		var s models.ExperienceSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.Media); err != nil {
			r.logger.Error("failed to scan summary row", zap.Error(err), zap.String("table", table))
			return nil, fmt.Errorf("failed to scan %s summary: %w", table, err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating summary rows", zap.Error(err), zap.String("table", table))
		return nil, fmt.Errorf("error iterating %s summaries: %w", table, err)
	}

	return summaries, nil
}

func (r *experienceRepository) byID(ctx context.Context, table string, id int) (*models.Experience, error) {
	query := fmt.Sprintf(`
		SELECT id, title, start_time, end_time, media, description, skills, company, link
		FROM %s
		WHERE id = ?
		LIMIT 1
	`, table)

	var e models.Experience
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.Title,
		&e.StartTime,
		&e.EndTime,
		&e.Media,
		&e.Description,
		&e.Skills,
		&e.Company,
		&e.Link,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("experience not found")
	}
	if err != nil {
		r.logger.Error("failed to get experience by id", zap.Error(err), zap.String("table", table), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get %s entry: %w", table, err)
	}

	return &e, nil
}
