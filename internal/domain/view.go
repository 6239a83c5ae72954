package domain

import (
	"fmt"
	"strings"
	"time"
)

// SavedView remembers how a petition was charted so it can be reopened.
type SavedView struct {
	PetitionID PetitionID
	Name       string
	Window     TimeWindow
	Selections []Selection
	ShowTotal  bool
	UpdatedAt  time.Time
}

func (v SavedView) Validate() error {
	if v.PetitionID <= 0 {
		return fmt.Errorf("petition id is required")
	}
	if err := v.Window.Validate(); err != nil && !v.Window.IsZero() {
		return err
	}

	seen := make(map[string]struct{}, len(v.Selections))
	for _, selection := range v.Selections {
		if !selection.Geography.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownGeography, selection.Geography)
		}
		code := NormalizeLocaleCode(selection.Locale.Code)
		if code == "" {
			return fmt.Errorf("locale code is required")
		}
		if _, ok := seen[code]; ok {
			return fmt.Errorf("%w: %s", ErrLocaleAlreadySelected, code)
		}
		seen[code] = struct{}{}
	}

	return nil
}

// GeoConfig rebuilds the selection as a configuration bounded by max.
func (v SavedView) GeoConfig(max int) (*GeoConfig, error) {
	config := NewGeoConfig(max)
	for _, selection := range v.Selections {
		if err := config.Add(selection.Geography, selection.Locale); err != nil {
			return nil, fmt.Errorf("restore %s %s: %w", selection.Geography, selection.Locale.Code, err)
		}
	}

	return config, nil
}

func (v SavedView) DisplayName() string {
	if name := strings.TrimSpace(v.Name); name != "" {
		return name
	}

	return "Petition " + v.PetitionID.String()
}
