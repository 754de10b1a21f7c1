package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// Dictionary is a flat key to string mapping of UI text for one locale.
// Looking up a missing key yields the empty string; consumers tolerate that.
type Dictionary map[string]string

// Dictionaries lazily loads and caches one Dictionary per supported locale
type Dictionaries struct {
	mu    sync.Mutex
	cache map[Locale]Dictionary
}

// NewDictionaries creates an empty dictionary cache
func NewDictionaries() *Dictionaries {
	return &Dictionaries{
		cache: make(map[Locale]Dictionary),
	}
}

// Get returns the dictionary for the given locale, parsing the embedded
// catalog on first use. An unsupported locale transparently yields the
// default locale's dictionary instead of an error.
func (d *Dictionaries) Get(locale Locale) (Dictionary, error) {
	if !IsSupported(string(locale)) {
		locale = DefaultLocale
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if dict, ok := d.cache[locale]; ok {
		return dict, nil
	}

	data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", locale))
	if err != nil {
		return nil, fmt.Errorf("failed to read locale catalog %q: %w", locale, err)
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse locale catalog %q: %w", locale, err)
	}

	d.cache[locale] = dict
	return dict, nil
}
