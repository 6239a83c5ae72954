package domain

import (
	"fmt"
	"strings"
)

type Geography string

const (
	GeographyCountry      Geography = "country"
	GeographyRegion       Geography = "region"
	GeographyConstituency Geography = "constituency"
)

// Geographies lists every geography in display order.
var Geographies = []Geography{GeographyCountry, GeographyRegion, GeographyConstituency}

func ParseGeography(raw string) (Geography, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "country", "countries":
		return GeographyCountry, nil
	case "region", "regions":
		return GeographyRegion, nil
	case "constituency", "constituencies":
		return GeographyConstituency, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: country, region, constituency)", ErrUnknownGeography, raw)
	}
}

func (g Geography) Valid() bool {
	switch g {
	case GeographyCountry, GeographyRegion, GeographyConstituency:
		return true
	default:
		return false
	}
}

func (g Geography) Plural() string {
	switch g {
	case GeographyCountry:
		return "countries"
	case GeographyRegion:
		return "regions"
	case GeographyConstituency:
		return "constituencies"
	default:
		return string(g)
	}
}

type Locale struct {
	Code string
	Name string
}

func (l Locale) Label() string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}

	return l.Code
}

// NormalizeLocaleCode upper-cases ISO and ONS codes so lookups are case agnostic.
func NormalizeLocaleCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
