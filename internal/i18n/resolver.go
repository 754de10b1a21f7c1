package i18n

import (
	"strings"
)

// Decision is the outcome of resolving a request path against the locale rules
type Decision struct {
	Redirect bool
	// Location is the redirect target; empty when Redirect is false
	Location string
}

// Resolve decides whether a page request must be redirected to a localized path.
// It is a pure function of the request path and the Accept-Language header:
//
//   - "/" redirects to "/{preferred}" based on the header's first language tag
//   - a path whose first segment is not a supported locale redirects to
//     "/en{path}" (the locale is inserted, the original path is kept)
//   - a path already carrying a supported locale passes through
func Resolve(path, acceptLanguage string) Decision {
	if path == "/" {
		return Decision{Redirect: true, Location: "/" + string(PreferredLocale(acceptLanguage))}
	}

	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if !IsSupported(segments[0]) {
		return Decision{Redirect: true, Location: "/" + string(DefaultLocale) + path}
	}

	return Decision{}
}

// PathLocale extracts the locale from the first segment of an already
// localized path. It returns the default locale when the segment is not a
// supported locale (Resolve guarantees this does not happen for page routes).
func PathLocale(path string) Locale {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if IsSupported(segments[0]) {
		return Locale(segments[0])
	}
	return DefaultLocale
}
