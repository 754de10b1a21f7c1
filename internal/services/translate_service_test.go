package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTranslateService_Translate(t *testing.T) {
	t.Run("returns translated text on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Hello", body["q"])
			assert.Equal(t, "en", body["source"])
			assert.Equal(t, "zh", body["target"])

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"translatedText": "你好"})
		}))
		defer server.Close()

		svc := NewTranslateService(server.URL, zap.NewNop())
		result := svc.Translate(context.Background(), "Hello", "en", "zh")
		assert.Equal(t, "你好", result)
	})

	t.Run("falls back to input on non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewTranslateService(server.URL, zap.NewNop())
		result := svc.Translate(context.Background(), "Hello", "en", "zh")
		assert.Equal(t, "Hello", result)
	})

	t.Run("falls back to input on network error", func(t *testing.T) {
		svc := NewTranslateService("http://127.0.0.1:1", zap.NewNop())
		result := svc.Translate(context.Background(), "Hello", "en", "zh")
		assert.Equal(t, "Hello", result)
	})

	t.Run("returns input when endpoint is not configured", func(t *testing.T) {
		svc := NewTranslateService("", zap.NewNop())
		result := svc.Translate(context.Background(), "Hello", "en", "zh")
		assert.Equal(t, "Hello", result)
	})
}
