package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/wuwarren/portfolio-backend/internal/models"
	"github.com/wuwarren/portfolio-backend/internal/storage"
	"go.uber.org/zap"
)

// mediaState tracks where the controller is in its selection/upload cycle
type mediaState int

const (
	stateIdle mediaState = iota
	stateSelected
	stateUploading
)

var (
	// ErrNoSelection is returned by Upload when no file is selected
	ErrNoSelection = errors.New("no file selected")
	// ErrUploadInFlight is returned when an upload is already running
	ErrUploadInFlight = errors.New("upload already in progress")
	// ErrNotAdmin is returned when a non-admin session attempts a mutation
	ErrNotAdmin = errors.New("session is not an admin session")
)

// MediaController manages slideshow media for one admin session: selecting
// a local file, previewing it, uploading it under a collision-resistant
// name and keeping the cached listing in sync with the server.
type MediaController struct {
	mu       sync.Mutex
	api      SlideAPI
	notifier *Notifier
	session  Session
	logger   *zap.Logger

	state       mediaState
	fileName    string
	previewPath string
	listing     []models.MediaDescriptor
}

// NewMediaController creates a media controller for the given session
func NewMediaController(api SlideAPI, notifier *Notifier, session Session, logger *zap.Logger) *MediaController {
	return &MediaController{
		api:      api,
		notifier: notifier,
		session:  session,
		logger:   logger,
		listing:  []models.MediaDescriptor{},
	}
}

// SelectFile spools the file at path to a local preview copy and records the
// selection. Any previous preview is released first, exactly once.
func (c *MediaController) SelectFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateUploading {
		return ErrUploadInFlight
	}

	source, err := os.Open(path)
	if err != nil {
		c.notifier.Notify("failed to open file", NotificationError)
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer source.Close()

	preview, err := os.CreateTemp("", "slide-preview-*"+filepath.Ext(path))
	if err != nil {
		c.notifier.Notify("failed to prepare preview", NotificationError)
		return fmt.Errorf("failed to create preview: %w", err)
	}

	if _, err := io.Copy(preview, source); err != nil {
		preview.Close()
		os.Remove(preview.Name())
		c.notifier.Notify("failed to prepare preview", NotificationError)
		return fmt.Errorf("failed to spool preview: %w", err)
	}
	if err := preview.Close(); err != nil {
		os.Remove(preview.Name())
		return fmt.Errorf("failed to finalize preview: %w", err)
	}

	// The old preview is released only after the new one exists, so a
	// failed selection keeps the previous state intact.
	c.releasePreview()

	c.fileName = filepath.Base(path)
	c.previewPath = preview.Name()
	c.state = stateSelected

	return nil
}

// Cancel releases the preview and clears the selection
func (c *MediaController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateUploading {
		return
	}

	c.releasePreview()
	c.fileName = ""
	c.state = stateIdle
}

// Upload transmits the selected file under a unique time-derived name, then
// re-fetches the listing. With no selection it notifies and performs no
// network call. A second call while one is in flight is rejected.
func (c *MediaController) Upload(ctx context.Context) error {
	c.mu.Lock()
	if !c.session.IsAdmin() {
		c.mu.Unlock()
		c.notifier.Notify("admin session required", NotificationError)
		return ErrNotAdmin
	}
	if c.state == stateUploading {
		c.mu.Unlock()
		return ErrUploadInFlight
	}
	if c.state != stateSelected {
		c.mu.Unlock()
		c.notifier.Notify("select a file before uploading", NotificationError)
		return ErrNoSelection
	}

	uploadName := storage.UniqueFileName(filepath.Ext(c.fileName))
	previewPath := c.previewPath
	c.state = stateUploading
	c.mu.Unlock()

	err := c.transmit(ctx, uploadName, previewPath)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Keep the selection so the user may retry
		c.state = stateSelected
		c.logger.Error("upload failed", zap.Error(err), zap.String("name", uploadName))
		c.notifier.Notify("upload failed", NotificationError)
		return err
	}

	c.releasePreview()
	c.fileName = ""
	c.state = stateIdle

	// Success is announced before the listing refresh so a refresh failure,
	// which notifies on its own, stays visible as the latest notification.
	c.notifier.Notify("upload complete", NotificationSuccess)
	c.refreshListingLocked(ctx)

	return nil
}

func (c *MediaController) transmit(ctx context.Context, uploadName, previewPath string) error {
	file, err := os.Open(previewPath)
	if err != nil {
		return fmt.Errorf("failed to open preview: %w", err)
	}
	defer file.Close()

	return c.api.UploadSlide(ctx, uploadName, file)
}

// DeleteMedia removes a stored slide by name, then re-fetches the listing.
// Nothing is removed locally before the server confirms.
func (c *MediaController) DeleteMedia(ctx context.Context, name string) error {
	if !c.session.IsAdmin() {
		c.notifier.Notify("admin session required", NotificationError)
		return ErrNotAdmin
	}

	if err := c.api.DeleteSlide(ctx, name); err != nil {
		c.logger.Error("delete failed", zap.Error(err), zap.String("name", name))
		c.notifier.Notify("delete failed", NotificationError)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifier.Notify("media deleted", NotificationSuccess)
	c.refreshListingLocked(ctx)

	return nil
}

// ListMedia fetches the server listing and replaces the cached one
func (c *MediaController) ListMedia(ctx context.Context) error {
	listing, err := c.api.ListSlides(ctx)
	if err != nil {
		c.logger.Error("listing fetch failed", zap.Error(err))
		c.notifier.Notify("failed to load media", NotificationError)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceListing(listing)

	return nil
}

// Listing returns the cached media listing
func (c *MediaController) Listing() []models.MediaDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	listing := make([]models.MediaDescriptor, len(c.listing))
	copy(listing, c.listing)
	return listing
}

// SelectedFileName returns the original name of the current selection
func (c *MediaController) SelectedFileName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fileName
}

// PreviewPath returns the path of the local preview copy, empty when idle
func (c *MediaController) PreviewPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previewPath
}

// releasePreview removes the preview file. Clearing previewPath afterwards
// guarantees the release happens at most once per allocation.
func (c *MediaController) releasePreview() {
	if c.previewPath == "" {
		return
	}
	if err := os.Remove(c.previewPath); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to release preview", zap.Error(err), zap.String("path", c.previewPath))
	}
	c.previewPath = ""
}

func (c *MediaController) refreshListingLocked(ctx context.Context) {
	listing, err := c.api.ListSlides(ctx)
	if err != nil {
		// The mutation already succeeded; a stale listing is the only fallout
		c.logger.Error("listing refresh failed", zap.Error(err))
		c.notifier.Notify("failed to refresh media", NotificationError)
		return
	}
	c.replaceListing(listing)
}

func (c *MediaController) replaceListing(listing []models.MediaDescriptor) {
	if listing == nil {
		listing = []models.MediaDescriptor{}
	}
	c.listing = listing
}
