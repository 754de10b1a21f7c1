// Package client implements the admin content-management controllers: the
// slideshow media controller, the home-word editor and the notification
// broadcaster, backed by a REST client for the portfolio backend API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/wuwarren/portfolio-backend/internal/models"
)

// SlideAPI is the network surface used by the media controller
type SlideAPI interface {
	ListSlides(ctx context.Context) ([]models.MediaDescriptor, error)
	UploadSlide(ctx context.Context, name string, reader io.Reader) error
	DeleteSlide(ctx context.Context, name string) error
}

// HomeWordAPI is the network surface used by the home-word editor
type HomeWordAPI interface {
	ListWords(ctx context.Context) ([]models.Word, error)
	CreateWord(ctx context.Context, word *models.Word) error
	UpdateWord(ctx context.Context, id string, req *models.UpdateWordRequest) error
}

// RestClient is the concrete API client over HTTP
type RestClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRestClient creates a REST client for the API rooted at baseURL
func NewRestClient(baseURL string) *RestClient {
	return &RestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListSlides retrieves the slideshow listing
func (c *RestClient) ListSlides(ctx context.Context) ([]models.MediaDescriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/slides", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list slides returned status %d", resp.StatusCode)
	}

	var body struct {
		Media []models.MediaDescriptor `json:"media"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	return body.Media, nil
}

// UploadSlide transmits a file under the given name as multipart form data
func (c *RestClient) UploadSlide(ctx context.Context, name string, reader io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/slides", &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload slide: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload returned status %d", resp.StatusCode)
	}

	return nil
}

// DeleteSlide removes a stored slide by name
func (c *RestClient) DeleteSlide(ctx context.Context, name string) error {
	endpoint := c.baseURL + "/api/slides/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete returned status %d", resp.StatusCode)
	}

	return nil
}

// ListWords retrieves the home words
func (c *RestClient) ListWords(ctx context.Context) ([]models.Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/homewords", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list words returned status %d", resp.StatusCode)
	}

	var body struct {
		Words []models.Word `json:"words"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}

	return body.Words, nil
}

// CreateWord stores a new home word with its client-generated ID
func (c *RestClient) CreateWord(ctx context.Context, word *models.Word) error {
	payload, err := json.Marshal(word)
	if err != nil {
		return fmt.Errorf("failed to encode word: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/homewords", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("create word returned status %d", resp.StatusCode)
	}

	return nil
}

// UpdateWord replaces the title and description of an existing home word
func (c *RestClient) UpdateWord(ctx context.Context, id string, updateReq *models.UpdateWordRequest) error {
	payload, err := json.Marshal(updateReq)
	if err != nil {
		return fmt.Errorf("failed to encode update: %w", err)
	}

	endpoint := c.baseURL + "/api/homewords/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update word returned status %d", resp.StatusCode)
	}

	return nil
}
