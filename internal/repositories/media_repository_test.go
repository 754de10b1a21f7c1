package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// setupMediaTestRepository creates a media repository with a mock database
func setupMediaTestRepository(t *testing.T) (*mediaRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMediaRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestMediaRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		file          *models.MediaFile
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			file: &models.MediaFile{
				Name:        "1700000000000.jpg",
				Path:        "/api/media/slides/1700000000000.jpg",
				ContentType: "image/jpeg",
				Size:        2048,
				Category:    models.MediaCategorySlides,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO media`).
					WithArgs("1700000000000.jpg", "/api/media/slides/1700000000000.jpg", "image/jpeg", int64(2048), models.MediaCategorySlides).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "database error on insert",
			file: &models.MediaFile{
				Name:        "1700000000000.jpg",
				Path:        "/api/media/slides/1700000000000.jpg",
				ContentType: "image/jpeg",
				Size:        2048,
				Category:    models.MediaCategorySlides,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO media`).
					WithArgs("1700000000000.jpg", "/api/media/slides/1700000000000.jpg", "image/jpeg", int64(2048), models.MediaCategorySlides).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "duplicate name",
			file: &models.MediaFile{
				Name:        "1700000000000.jpg",
				Path:        "/api/media/slides/1700000000000.jpg",
				ContentType: "image/jpeg",
				Size:        2048,
				Category:    models.MediaCategorySlides,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO media`).
					WithArgs("1700000000000.jpg", "/api/media/slides/1700000000000.jpg", "image/jpeg", int64(2048), models.MediaCategorySlides).
					WillReturnError(errors.New("Error 1062: Duplicate entry '1700000000000.jpg' for key 'PRIMARY'"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMediaTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.file)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMediaRepository_ListByCategory(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"name", "path", "content_type", "size", "category"}).
					AddRow("b.jpg", "/api/media/slides/b.jpg", "image/jpeg", int64(10), models.MediaCategorySlides).
					AddRow("a.png", "/api/media/slides/a.png", "image/png", int64(20), models.MediaCategorySlides)
				mock.ExpectQuery(`SELECT name, path, content_type, size, category FROM media WHERE category = \?`).
					WithArgs(models.MediaCategorySlides).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "empty listing",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"name", "path", "content_type", "size", "category"})
				mock.ExpectQuery(`SELECT name, path, content_type, size, category FROM media WHERE category = \?`).
					WithArgs(models.MediaCategorySlides).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT name, path, content_type, size, category FROM media WHERE category = \?`).
					WithArgs(models.MediaCategorySlides).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMediaTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			files, err := repo.ListByCategory(context.Background(), models.MediaCategorySlides)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, files)
			} else {
				assert.NoError(t, err)
				assert.Len(t, files, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMediaRepository_GetByName(t *testing.T) {
	repo, mock, cleanup := setupMediaTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"path", "content_type", "size"}).
		AddRow("/api/media/slides/a.jpg", "image/jpeg", int64(42))
	mock.ExpectQuery(`SELECT path, content_type, size FROM media WHERE category = \? AND name = \? LIMIT 1`).
		WithArgs(models.MediaCategorySlides, "a.jpg").
		WillReturnRows(rows)

	file, err := repo.GetByName(context.Background(), models.MediaCategorySlides, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", file.Name)
	assert.Equal(t, "image/jpeg", file.ContentType)
	assert.Equal(t, models.MediaCategorySlides, file.Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaRepository_DeleteByName(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM media WHERE category = \? AND name = \?`).
					WithArgs(models.MediaCategorySlides, "a.jpg").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "absent name is not an error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM media WHERE category = \? AND name = \?`).
					WithArgs(models.MediaCategorySlides, "a.jpg").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM media WHERE category = \? AND name = \?`).
					WithArgs(models.MediaCategorySlides, "a.jpg").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMediaTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.DeleteByName(context.Background(), models.MediaCategorySlides, "a.jpg")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
