// Package i18n resolves the request locale and loads per-locale UI dictionaries.
//
// Every page request is resolved to exactly one supported locale before any
// page logic runs: the root path redirects to the visitor's preferred locale,
// and paths without a supported locale prefix redirect to the default one.
package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported language tag
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// DefaultLocale is the universal fallback
const DefaultLocale = LocaleEnglish

// SupportedLocales lists every locale the site can serve
var SupportedLocales = []Locale{LocaleEnglish, LocaleChinese}

// IsSupported reports whether s names a supported locale
func IsSupported(s string) bool {
	for _, l := range SupportedLocales {
		if string(l) == s {
			return true
		}
	}
	return false
}

// PreferredLocale picks the visitor's locale from an Accept-Language header value.
// Only the first (highest quality) tag is considered; anything outside the
// supported set falls back to the default locale. An absent or malformed
// header also yields the default.
func PreferredLocale(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	first := tags[0].String()
	if IsSupported(first) {
		return Locale(first)
	}
	return DefaultLocale
}
