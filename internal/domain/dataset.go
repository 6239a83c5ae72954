package domain

import (
	"sort"
	"strings"
	"time"
)

type DatasetKey string

const TotalKey DatasetKey = "Total"

const totalLabel = "Total"

func LocaleKey(geo Geography, code string) DatasetKey {
	return DatasetKey(string(geo) + ":" + NormalizeLocaleCode(code))
}

func (k DatasetKey) IsTotal() bool {
	return k == TotalKey
}

// Split returns the geography and locale code of a locale key.
func (k DatasetKey) Split() (Geography, string, bool) {
	geo, code, ok := strings.Cut(string(k), ":")
	if !ok {
		return "", "", false
	}

	return Geography(geo), code, true
}

type SignatureSample struct {
	Timestamp time.Time
	Count     int64
}

// Display holds the presentation settings merged into a dataset by the registry.
type Display struct {
	Color  string
	Marker string
}

type Dataset struct {
	Key         DatasetKey
	Geography   Geography
	Locale      Locale
	Label       string
	Samples     []SignatureSample
	Display     Display
	Placeholder bool
	FetchedAt   time.Time
}

func NewTotalDataset(samples []SignatureSample, fetchedAt time.Time) Dataset {
	return Dataset{
		Key:       TotalKey,
		Label:     totalLabel,
		Samples:   SortSamples(samples),
		FetchedAt: fetchedAt,
	}
}

func NewLocaleDataset(geo Geography, locale Locale, samples []SignatureSample, fetchedAt time.Time) Dataset {
	return Dataset{
		Key:       LocaleKey(geo, locale.Code),
		Geography: geo,
		Locale:    locale,
		Label:     locale.Label(),
		Samples:   SortSamples(samples),
		FetchedAt: fetchedAt,
	}
}

// NewPlaceholderDataset is the empty series shown for a locale the API has no data for.
// Total uses the same flag when its window holds no records.
func NewPlaceholderDataset(geo Geography, locale Locale, fetchedAt time.Time) Dataset {
	dataset := NewLocaleDataset(geo, locale, nil, fetchedAt)
	dataset.Placeholder = true
	return dataset
}

// WithDisplay returns a copy with the non-empty display fields merged in.
func (d Dataset) WithDisplay(display Display) Dataset {
	out := d.Clone()
	if display.Color != "" {
		out.Display.Color = display.Color
	}
	if display.Marker != "" {
		out.Display.Marker = display.Marker
	}

	return out
}

func (d Dataset) Clone() Dataset {
	out := d
	if d.Samples != nil {
		out.Samples = append([]SignatureSample(nil), d.Samples...)
	}

	return out
}

func (d Dataset) Latest() (SignatureSample, bool) {
	if len(d.Samples) == 0 {
		return SignatureSample{}, false
	}

	return d.Samples[len(d.Samples)-1], true
}

// Gain is the change in count between the first and last sample.
func (d Dataset) Gain() int64 {
	if len(d.Samples) < 2 {
		return 0
	}

	return d.Samples[len(d.Samples)-1].Count - d.Samples[0].Count
}

// SortSamples returns the samples ordered by timestamp, oldest first.
func SortSamples(samples []SignatureSample) []SignatureSample {
	if len(samples) == 0 {
		return nil
	}

	sorted := append([]SignatureSample(nil), samples...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted
}
