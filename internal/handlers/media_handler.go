package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// maxUploadSize limits multipart form parsing for media uploads
const maxUploadSize = 50 << 20 // 50MB

// MediaService defines the interface for media service operations
type MediaService interface {
	// Method List retrieves the descriptors of all stored media in a category.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	List(ctx context.Context, category models.MediaCategory) ([]models.MediaDescriptor, error)
	// Method Upload stores a file under a server-assigned name and records its metadata.
	//
	// "reader" parameter is the file content to store.
	// "originalName" parameter is the filename sent by the client, used for its extension.
	// "category" parameter is the media category to store the file under.
	//
	// If some error will occur during file upload, the error will be returned together with "nil" value.
	Upload(ctx context.Context, reader io.Reader, originalName string, category models.MediaCategory) (*models.MediaFile, error)
	// Method Delete removes a stored file and its metadata.
	//
	// Deleting a name that is not stored is not an error.
	Delete(ctx context.Context, category models.MediaCategory, name string) error
	// Method FileReader retrieves a reader for a stored file.
	FileReader(category models.MediaCategory, name string) (io.ReadCloser, error)
	// Method File retrieves a stored file, suitable for range requests.
	File(category models.MediaCategory, name string) (*os.File, error)
	// Method ContentTypeFor derives a content type from a stored file name.
	ContentTypeFor(name string) string
	// Method IsValidCategory checks if the category is valid.
	IsValidCategory(category string) bool
}

// MediaHandler handles media-related HTTP requests
type MediaHandler struct {
	BaseHandler
	mediaService MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		mediaService: mediaService,
	}
}

// RegisterRoutes registers all media handler routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/slides", func(r chi.Router) {
		r.Get("/", h.ListSlides)
		r.Post("/", h.UploadSlide)
		r.Delete("/{name}", h.DeleteSlide)
	})
	// File serving lives under its own prefix so it cannot collide with the
	// per-category API subrouters
	r.Get("/media/{category}/{filename}", h.ServeFile)
}

// ListSlides handles GET /api/slides
// @Summary List slideshow media
// @Description Retrieve the name and path of every stored slideshow file
// @Tags media
// @Produce json
// @Success 200 {object} map[string][]models.MediaDescriptor
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /slides [get]
func (h *MediaHandler) ListSlides(w http.ResponseWriter, r *http.Request) {
	media, err := h.mediaService.List(r.Context(), models.MediaCategorySlides)
	if err != nil {
		h.Logger.Error("failed to list slides", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list slides")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.MediaDescriptor{"media": media})
}

// UploadSlide handles POST /api/slides
// @Summary Upload slideshow media
// @Description Store an image or video for the home slideshow under a server-assigned name
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} models.MediaFile
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /slides [post]
func (h *MediaHandler) UploadSlide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.Logger.Error("failed to get file from form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	stored, err := h.mediaService.Upload(r.Context(), file, fileHeader.Filename, models.MediaCategorySlides)
	if err != nil {
		h.Logger.Error("failed to upload slide", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to upload file")
		return
	}

	h.RespondJSON(w, http.StatusCreated, stored)
}

// DeleteSlide handles DELETE /api/slides/{name}
// @Summary Delete slideshow media
// @Description Remove a slideshow file and its metadata. Deleting an absent name succeeds.
// @Tags media
// @Produce json
// @Param name path string true "Stored file name"
// @Success 204 "File deleted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /slides/{name} [delete]
func (h *MediaHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.mediaService.Delete(r.Context(), models.MediaCategorySlides, name); err != nil {
		h.Logger.Error("failed to delete slide", zap.Error(err), zap.String("name", name))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete file")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServeFile handles GET /api/media/{category}/{filename}
// @Summary Download media file
// @Description Serve a stored media file. Video files support range requests.
// @Tags media
// @Produce application/octet-stream
// @Param category path string true "Media category"
// @Param filename path string true "File name"
// @Param Range header string false "Range"
// @Success 200 "File content"
// @Success 206 "Partial file content (for range requests)"
// @Failure 400 {object} map[string]string "Invalid category"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /media/{category}/{filename} [get]
func (h *MediaHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	categoryStr := chi.URLParam(r, "category")
	filename := chi.URLParam(r, "filename")

	if !h.mediaService.IsValidCategory(categoryStr) {
		h.RespondError(w, http.StatusBadRequest, "invalid media category")
		return
	}
	category := models.MediaCategory(categoryStr)

	contentType := h.mediaService.ContentTypeFor(filename)

	// Videos go through ServeContent for range support
	if strings.HasPrefix(contentType, "video/") {
		file, err := h.mediaService.File(category, filename)
		if err != nil {
			if os.IsNotExist(err) {
				h.RespondError(w, http.StatusNotFound, "file not found")
				return
			}
			h.Logger.Error("failed to open file", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to open file")
			return
		}
		defer file.Close()

		fileInfo, err := file.Stat()
		if err != nil {
			h.Logger.Error("failed to get file info", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to get file info")
			return
		}

		http.ServeContent(w, r, filename, fileInfo.ModTime(), file)
		return
	}

	reader, err := h.mediaService.FileReader(category, filename)
	if err != nil {
		if os.IsNotExist(err) {
			h.RespondError(w, http.StatusNotFound, "file not found")
			return
		}
		h.Logger.Error("failed to open file", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to open file")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, reader); err != nil {
		h.Logger.Error("failed to copy file to response", zap.Error(err))
	}
}
