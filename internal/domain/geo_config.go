package domain

import (
	"fmt"
	"strings"
)

const DefaultMaxDatasets = 11

type Selection struct {
	Geography Geography
	Locale    Locale
}

// GeoConfig tracks the locales selected for charting per geography. A locale
// code appears in at most one geography and the total never exceeds Max.
// Failed operations leave the configuration untouched.
type GeoConfig struct {
	max      int
	selected map[Geography][]Locale
}

func NewGeoConfig(max int) *GeoConfig {
	if max <= 0 {
		max = DefaultMaxDatasets
	}

	return &GeoConfig{
		max:      max,
		selected: make(map[Geography][]Locale, len(Geographies)),
	}
}

func (c *GeoConfig) Max() int {
	return c.max
}

func (c *GeoConfig) Add(geo Geography, locale Locale) error {
	if !geo.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGeography, geo)
	}

	locale.Code = NormalizeLocaleCode(locale.Code)
	if locale.Code == "" {
		return fmt.Errorf("locale code is required")
	}

	if existing, ok := c.Contains(locale.Code); ok {
		return fmt.Errorf("%w: %s is already charted under %s", ErrLocaleAlreadySelected, locale.Label(), existing)
	}

	if c.Len() >= c.max {
		return fmt.Errorf("%w: at most %d datasets can be charted", ErrMaxDatasets, c.max)
	}

	c.selected[geo] = append(c.selected[geo], locale)
	return nil
}

func (c *GeoConfig) Remove(geo Geography, code string) (Locale, error) {
	code = NormalizeLocaleCode(code)
	locales := c.selected[geo]
	for i, locale := range locales {
		if locale.Code != code {
			continue
		}

		remaining := make([]Locale, 0, len(locales)-1)
		remaining = append(remaining, locales[:i]...)
		remaining = append(remaining, locales[i+1:]...)
		c.selected[geo] = remaining
		return locale, nil
	}

	return Locale{}, fmt.Errorf("%w: %s %s", ErrLocaleNotSelected, geo, code)
}

// Contains reports which geography a locale code is selected under.
func (c *GeoConfig) Contains(code string) (Geography, bool) {
	code = NormalizeLocaleCode(code)
	for _, geo := range Geographies {
		for _, locale := range c.selected[geo] {
			if locale.Code == code {
				return geo, true
			}
		}
	}

	return "", false
}

func (c *GeoConfig) Len() int {
	total := 0
	for _, locales := range c.selected {
		total += len(locales)
	}

	return total
}

func (c *GeoConfig) Selected(geo Geography) []Locale {
	return append([]Locale(nil), c.selected[geo]...)
}

// Selections returns every selection ordered by geography, then insertion.
func (c *GeoConfig) Selections() []Selection {
	selections := make([]Selection, 0, c.Len())
	for _, geo := range Geographies {
		for _, locale := range c.selected[geo] {
			selections = append(selections, Selection{Geography: geo, Locale: locale})
		}
	}

	return selections
}

// Each visits selections in the same order as Selections and stops when fn
// returns false.
func (c *GeoConfig) Each(fn func(Selection) bool) {
	for _, selection := range c.Selections() {
		if !fn(selection) {
			return
		}
	}
}

// SetName updates the display name of a selected locale once the API reports it.
func (c *GeoConfig) SetName(geo Geography, code, name string) {
	code = NormalizeLocaleCode(code)
	for i, locale := range c.selected[geo] {
		if locale.Code == code && strings.TrimSpace(name) != "" {
			c.selected[geo][i].Name = name
		}
	}
}

func (c *GeoConfig) Clone() *GeoConfig {
	clone := NewGeoConfig(c.max)
	for geo, locales := range c.selected {
		clone.selected[geo] = append([]Locale(nil), locales...)
	}

	return clone
}

func (c *GeoConfig) Reset() {
	c.selected = make(map[Geography][]Locale, len(Geographies))
}
