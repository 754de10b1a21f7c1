// Package services implements the business logic between handlers and the
// repositories, storage and external clients they depend on.
package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"github.com/wuwarren/portfolio-backend/internal/storage"
	"go.uber.org/zap"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Create creates a new file and returns a WriteCloser
	Create(category, name string) (io.WriteCloser, error)

	// Open opens a file for reading and returns a ReadCloser
	Open(category, name string) (io.ReadCloser, error)

	// OpenFile opens a file and returns *os.File for use with http.ServeContent
	OpenFile(category, name string) (*os.File, error)

	// Delete removes a file
	Delete(category, name string) error
}

// MediaRepository defines the interface for media metadata data access
type MediaRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	ListByCategory(ctx context.Context, category models.MediaCategory) ([]models.MediaFile, error)
	GetByName(ctx context.Context, category models.MediaCategory, name string) (*models.MediaFile, error)
	DeleteByName(ctx context.Context, category models.MediaCategory, name string) error
}

// MediaService handles business logic for media upload, listing and deletion
type MediaService struct {
	repo    MediaRepository
	storage Storage
	baseURL string
	logger  *zap.Logger
}

// NewMediaService creates a new media service. Download URLs in the stored
// metadata are generated against baseURL.
func NewMediaService(repo MediaRepository, storage Storage, baseURL string, logger *zap.Logger) *MediaService {
	return &MediaService{
		repo:    repo,
		storage: storage,
		baseURL: baseURL,
		logger:  logger,
	}
}

// List retrieves the listing view of every file in a category
func (s *MediaService) List(ctx context.Context, category models.MediaCategory) ([]models.MediaDescriptor, error) {
	if !s.IsValidCategory(string(category)) {
		return nil, fmt.Errorf("invalid media category: %s", category)
	}

	files, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	// The listing is always fully replaced on the client side, so an empty
	// slice (not nil) keeps the JSON shape stable
	descriptors := make([]models.MediaDescriptor, 0, len(files))
	for i := range files {
		descriptors = append(descriptors, files[i].Descriptor())
	}
	return descriptors, nil
}

// Upload stores an uploaded file and its metadata record. The stored name is
// server-assigned from the upload time plus the original file's extension,
// so concurrent admin sessions cannot collide on user-chosen names.
func (s *MediaService) Upload(ctx context.Context, reader io.Reader, originalName string, category models.MediaCategory) (*models.MediaFile, error) {
	if !s.IsValidCategory(string(category)) {
		return nil, fmt.Errorf("invalid media category: %s", category)
	}

	name := storage.UniqueFileName(filepath.Ext(originalName))

	sizeWriter := storage.NewSizeWriter()
	teeReader := io.TeeReader(reader, sizeWriter)

	writeCloser, err := s.storage.Create(string(category), name)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer writeCloser.Close()

	if _, err := io.Copy(writeCloser, teeReader); err != nil {
		// Cleanup: remove the partial file
		s.storage.Delete(string(category), name)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	file := &models.MediaFile{
		Name:        name,
		Path:        fmt.Sprintf("%s/api/media/%s/%s", s.baseURL, category, name),
		ContentType: storage.ContentTypeByExtension(name),
		Size:        sizeWriter.Size(),
		Category:    category,
	}

	if err := s.repo.Create(ctx, file); err != nil {
		// Cleanup: the metadata row is the source of truth for listings
		s.storage.Delete(string(category), name)
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	return file, nil
}

// Delete removes a file and its metadata record. Deleting a name that no
// longer exists is not an error, so repeated deletes cannot corrupt the
// listing.
func (s *MediaService) Delete(ctx context.Context, category models.MediaCategory, name string) error {
	if !s.IsValidCategory(string(category)) {
		return fmt.Errorf("invalid media category: %s", category)
	}

	if err := s.storage.Delete(string(category), name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.repo.DeleteByName(ctx, category, name); err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}

	return nil
}

// FileReader returns a reader over a stored file
func (s *MediaService) FileReader(category models.MediaCategory, name string) (io.ReadCloser, error) {
	return s.storage.Open(string(category), name)
}

// File returns an *os.File for use with http.ServeContent
func (s *MediaService) File(category models.MediaCategory, name string) (*os.File, error) {
	return s.storage.OpenFile(string(category), name)
}

// ContentTypeFor derives the content type a stored file is served with
func (s *MediaService) ContentTypeFor(name string) string {
	return storage.ContentTypeByExtension(name)
}

// IsValidCategory checks if the media category is valid
func (s *MediaService) IsValidCategory(category string) bool {
	switch models.MediaCategory(category) {
	case models.MediaCategorySlides,
		models.MediaCategoryProjects,
		models.MediaCategoryProfessionals:
		return true
	default:
		return false
	}
}
