package i18n

import (
	"net/http"
	"strings"
)

// Paths never subject to locale redirects: API endpoints, docs and assets.
var exemptPrefixes = []string{
	"/api",
	"/swagger",
	"/static",
	"/favicon.ico",
}

// exempt matches a prefix as a whole path segment, so both "/api" and
// "/api/slides" are exempt while "/apiary" is not.
func exempt(path string) bool {
	for _, prefix := range exemptPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// RedirectMiddleware applies Resolve to every page request ahead of any page
// handler. API and asset paths pass through untouched.
func RedirectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if exempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		decision := Resolve(r.URL.Path, r.Header.Get("Accept-Language"))
		if decision.Redirect {
			http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
