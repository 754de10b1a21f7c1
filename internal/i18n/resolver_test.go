package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferredLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       Locale
	}{
		{
			name:           "first tag supported",
			acceptLanguage: "zh,en;q=0.8",
			expected:       LocaleChinese,
		},
		{
			name:           "first tag unsupported falls back to default",
			acceptLanguage: "fr,zh;q=0.9",
			expected:       LocaleEnglish,
		},
		{
			name:           "empty header",
			acceptLanguage: "",
			expected:       LocaleEnglish,
		},
		{
			name:           "malformed header",
			acceptLanguage: ";;;",
			expected:       LocaleEnglish,
		},
		{
			name:           "plain english",
			acceptLanguage: "en",
			expected:       LocaleEnglish,
		},
		{
			name:           "regional variant is not an exact match",
			acceptLanguage: "zh-CN,zh;q=0.9",
			expected:       LocaleEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreferredLocale(tt.acceptLanguage))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		acceptLanguage string
		expected       Decision
	}{
		{
			name:           "root redirects to preferred locale",
			path:           "/",
			acceptLanguage: "zh,en;q=0.8",
			expected:       Decision{Redirect: true, Location: "/zh"},
		},
		{
			name:           "root without header redirects to default",
			path:           "/",
			acceptLanguage: "",
			expected:       Decision{Redirect: true, Location: "/en"},
		},
		{
			name:     "unlocalized path gets default prefix inserted",
			path:     "/about",
			expected: Decision{Redirect: true, Location: "/en/about"},
		},
		{
			name:     "unsupported locale segment gets default prefix inserted",
			path:     "/fr/experiences",
			expected: Decision{Redirect: true, Location: "/en/fr/experiences"},
		},
		{
			name:     "nested unlocalized path keeps full path",
			path:     "/experiences/projects/3",
			expected: Decision{Redirect: true, Location: "/en/experiences/projects/3"},
		},
		{
			name:     "english path passes through",
			path:     "/en/about",
			expected: Decision{},
		},
		{
			name:     "chinese path passes through",
			path:     "/zh",
			expected: Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.path, tt.acceptLanguage))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first := Resolve("/experiences", "zh")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve("/experiences", "zh"))
	}
}

func TestPathLocale(t *testing.T) {
	assert.Equal(t, LocaleChinese, PathLocale("/zh/about"))
	assert.Equal(t, LocaleEnglish, PathLocale("/en"))
	assert.Equal(t, DefaultLocale, PathLocale("/unknown/about"))
}

func TestRedirectMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RedirectMiddleware(next)

	tests := []struct {
		name             string
		path             string
		acceptLanguage   string
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:             "root redirects",
			path:             "/",
			acceptLanguage:   "zh",
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/zh",
		},
		{
			name:             "unlocalized page redirects",
			path:             "/about",
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/en/about",
		},
		{
			name:           "localized page passes",
			path:           "/en/about",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "api paths are exempt",
			path:           "/api/slides",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger paths are exempt",
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bare api root is exempt",
			path:           "/api",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bare swagger root is exempt",
			path:           "/swagger",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "an exempt prefix only matches whole segments",
			path:             "/apiary",
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "/en/apiary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}
