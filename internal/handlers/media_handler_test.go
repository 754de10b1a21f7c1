package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// mockMediaService is a mock implementation of MediaService
type mockMediaService struct {
	listResult   []models.MediaDescriptor
	listErr      error
	uploadResult *models.MediaFile
	uploadErr    error
	deleteErr    error
	deleted      []string
}

func (m *mockMediaService) List(ctx context.Context, category models.MediaCategory) ([]models.MediaDescriptor, error) {
	return m.listResult, m.listErr
}

func (m *mockMediaService) Upload(ctx context.Context, reader io.Reader, originalName string, category models.MediaCategory) (*models.MediaFile, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	io.Copy(io.Discard, reader)
	return m.uploadResult, nil
}

func (m *mockMediaService) Delete(ctx context.Context, category models.MediaCategory, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, name)
	return nil
}

func (m *mockMediaService) FileReader(category models.MediaCategory, name string) (io.ReadCloser, error) {
	if name == "missing.jpg" {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewBufferString("image-bytes")), nil
}

func (m *mockMediaService) File(category models.MediaCategory, name string) (*os.File, error) {
	return nil, os.ErrNotExist
}

func (m *mockMediaService) ContentTypeFor(name string) string {
	return "image/jpeg"
}

func (m *mockMediaService) IsValidCategory(category string) bool {
	return category == "slides" || category == "projects" || category == "professionals"
}

func setupMediaRouter(svc MediaService) chi.Router {
	handler := NewMediaHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api", handler.RegisterRoutes)
	return r
}

func TestMediaHandler_ListSlides(t *testing.T) {
	tests := []struct {
		name           string
		service        *mockMediaService
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "returns stored media",
			service: &mockMediaService{
				listResult: []models.MediaDescriptor{
					{Name: "1700000000000.jpg", Path: "/api/media/slides/1700000000000.jpg"},
				},
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "returns empty listing",
			service:        &mockMediaService{listResult: []models.MediaDescriptor{}},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "service failure",
			service:        &mockMediaService{listErr: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMediaRouter(tt.service)

			req := httptest.NewRequest(http.MethodGet, "/api/slides/", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var body map[string][]models.MediaDescriptor
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				media, ok := body["media"]
				require.True(t, ok)
				assert.Len(t, media, tt.expectedCount)
			}
		})
	}
}

func TestMediaHandler_UploadSlide(t *testing.T) {
	t.Run("stores file under server-assigned name", func(t *testing.T) {
		service := &mockMediaService{
			uploadResult: &models.MediaFile{
				Name:        "1700000000000.jpg",
				Path:        "/api/media/slides/1700000000000.jpg",
				ContentType: "image/jpeg",
				Size:        11,
				Category:    models.MediaCategorySlides,
			},
		}
		router := setupMediaRouter(service)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "photo.jpg")
		require.NoError(t, err)
		part.Write([]byte("image-bytes"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/slides/", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var stored models.MediaFile
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&stored))
		assert.Equal(t, "1700000000000.jpg", stored.Name)
	})

	t.Run("rejects request without file", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("name", "photo.jpg")
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/slides/", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{uploadErr: errors.New("disk full")})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "photo.jpg")
		require.NoError(t, err)
		part.Write([]byte("image-bytes"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/slides/", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMediaHandler_DeleteSlide(t *testing.T) {
	t.Run("deletes stored file", func(t *testing.T) {
		service := &mockMediaService{}
		router := setupMediaRouter(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/slides/1700000000000.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"1700000000000.jpg"}, service.deleted)
	})

	t.Run("absent name still succeeds", func(t *testing.T) {
		// The service treats a missing row/file as a completed delete
		service := &mockMediaService{}
		router := setupMediaRouter(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/slides/never-stored.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{deleteErr: errors.New("db down")})

		req := httptest.NewRequest(http.MethodDelete, "/api/slides/1700000000000.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMediaHandler_ServeFile(t *testing.T) {
	t.Run("serves file with derived content type", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{})

		req := httptest.NewRequest(http.MethodGet, "/api/media/slides/1700000000000.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
		assert.Equal(t, "image-bytes", rec.Body.String())
	})

	t.Run("invalid category", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{})

		req := httptest.NewRequest(http.MethodGet, "/api/media/avatars/1700000000000.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		router := setupMediaRouter(&mockMediaService{})

		req := httptest.NewRequest(http.MethodGet, "/api/media/slides/missing.jpg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("every category stays reachable beside the other routes", func(t *testing.T) {
		// Mount the full API surface the way main does: the file route must
		// not be shadowed by the per-category subrouters.
		mediaHandler := NewMediaHandler(&mockMediaService{}, zap.NewNop())
		experienceHandler := NewExperienceHandler(&stubExperienceService{}, zap.NewNop())

		router := chi.NewRouter()
		router.Route("/api", func(r chi.Router) {
			mediaHandler.RegisterRoutes(r)
			experienceHandler.RegisterRoutes(r)
		})

		for _, category := range []string{"slides", "projects", "professionals"} {
			req := httptest.NewRequest(http.MethodGet, "/api/media/"+category+"/1700000000000.jpg", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "category %s", category)
			assert.Equal(t, "image-bytes", rec.Body.String())
		}
	})
}

// stubExperienceService satisfies ExperienceService for routing tests
type stubExperienceService struct{}

func (s *stubExperienceService) ProjectSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	return nil, nil
}

func (s *stubExperienceService) ProfessionalSummaries(ctx context.Context) ([]models.ExperienceSummary, error) {
	return nil, nil
}

func (s *stubExperienceService) ProjectByID(ctx context.Context, id int, locale string) (*models.Experience, error) {
	return nil, errors.New("experience not found")
}

func (s *stubExperienceService) ProfessionalByID(ctx context.Context, id int, locale string) (*models.Experience, error) {
	return nil, errors.New("experience not found")
}
