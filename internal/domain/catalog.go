package domain

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	catalogOnce sync.Once
	catalog     map[Geography]map[string]string
	catalogErr  error
)

func loadCatalog() (map[Geography]map[string]string, error) {
	catalogOnce.Do(func() {
		var raw map[string]map[string]string
		if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
			catalogErr = fmt.Errorf("decode geography catalog: %w", err)
			return
		}

		catalog = make(map[Geography]map[string]string, len(raw))
		for geo, locales := range raw {
			parsed, err := ParseGeography(geo)
			if err != nil {
				catalogErr = fmt.Errorf("decode geography catalog: %w", err)
				return
			}
			catalog[parsed] = locales
		}
	})

	return catalog, catalogErr
}

// LookupLocale resolves a locale by code or, case-insensitively, by name.
// Unknown constituencies are not an error: the API labels them.
func LookupLocale(geo Geography, codeOrName string) (Locale, bool) {
	entries, err := loadCatalog()
	if err != nil {
		return Locale{}, false
	}

	locales := entries[geo]
	code := NormalizeLocaleCode(codeOrName)
	if name, ok := locales[code]; ok {
		return Locale{Code: code, Name: name}, true
	}

	wanted := strings.TrimSpace(codeOrName)
	for code, name := range locales {
		if strings.EqualFold(name, wanted) {
			return Locale{Code: code, Name: name}, true
		}
	}

	return Locale{}, false
}

// ResolveLocale returns the catalogued locale, or a bare locale carrying only
// the normalised code.
func ResolveLocale(geo Geography, codeOrName string) Locale {
	if locale, ok := LookupLocale(geo, codeOrName); ok {
		return locale
	}

	return Locale{Code: NormalizeLocaleCode(codeOrName)}
}

// CatalogLocales lists the catalogued locales of a geography sorted by name.
func CatalogLocales(geo Geography) ([]Locale, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	locales := make([]Locale, 0, len(entries[geo]))
	for code, name := range entries[geo] {
		locales = append(locales, Locale{Code: code, Name: name})
	}
	sort.Slice(locales, func(i, j int) bool {
		return locales[i].Name < locales[j].Name
	})

	return locales, nil
}
