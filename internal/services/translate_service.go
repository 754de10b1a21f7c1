package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Translator turns short text fields into another language. Implementations
// must fall back to the input text on any failure; translation is best-effort
// decoration, never a reason to fail a page.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) string
}

// TranslateService calls a LibreTranslate-compatible endpoint
type TranslateService struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewTranslateService creates a translation client for the given endpoint.
// An empty endpoint disables translation; every call returns its input.
func NewTranslateService(endpoint string, logger *zap.Logger) *TranslateService {
	return &TranslateService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate returns the text translated from sourceLang to targetLang, or
// the original text unchanged when the endpoint is unset, unreachable or
// answers with anything but a usable translation.
func (s *TranslateService) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	if s.endpoint == "" || text == "" || sourceLang == targetLang {
		return text
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	})
	if err != nil {
		s.logger.Error("failed to encode translation request", zap.Error(err))
		return text
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		s.logger.Error("failed to build translation request", zap.Error(err))
		return text
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("translation request failed", zap.Error(err))
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("translation request rejected", zap.Int("status", resp.StatusCode))
		return text
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.Warn("failed to decode translation response", zap.Error(err))
		return text
	}

	if result.TranslatedText == "" {
		return text
	}
	return result.TranslatedText
}
