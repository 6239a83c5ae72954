package application

import "github.com/bnema/petition-tracker/internal/domain"

// Palette is the colour cycle for charted series. Total always takes the
// first colour; locales take the first colour no other series is using.
var Palette = []string{
	"#00ffff", // cyan
	"#a9a9a9", // darkgrey
	"#e9967a", // darksalmon
	"#ffd700", // gold
	"#008000", // green
	"#4b0082", // indigo
	"#00ff00", // lime
	"#ff00ff", // magenta
	"#800000", // maroon
	"#000080", // navy
	"#ffa500", // orange
	"#ffc0cb", // pink
}

var markers = []string{"●", "◆", "■", "▲", "✚", "✖", "○", "◇", "□", "△", "+", "x"}

// Registry is the ordered list of series currently on the chart.
type Registry struct {
	datasets []domain.Dataset
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends the dataset with a free palette slot. Total is kept first.
// Adding a key that is already displayed is a no-op and reports false.
func (r *Registry) Add(dataset domain.Dataset) bool {
	if r.Has(dataset.Key) {
		return false
	}

	dataset = dataset.WithDisplay(r.nextDisplay(dataset.Key))
	if dataset.Key.IsTotal() {
		r.datasets = append([]domain.Dataset{dataset}, r.datasets...)
		return true
	}

	r.datasets = append(r.datasets, dataset)
	return true
}

// Replace swaps the samples of a displayed dataset, keeping its position and
// display settings.
func (r *Registry) Replace(dataset domain.Dataset) bool {
	for i, existing := range r.datasets {
		if existing.Key != dataset.Key {
			continue
		}
		r.datasets[i] = dataset.WithDisplay(existing.Display)
		return true
	}

	return false
}

func (r *Registry) Remove(key domain.DatasetKey) bool {
	for i, existing := range r.datasets {
		if existing.Key != key {
			continue
		}
		r.datasets = append(r.datasets[:i:i], r.datasets[i+1:]...)
		return true
	}

	return false
}

func (r *Registry) Has(key domain.DatasetKey) bool {
	for _, existing := range r.datasets {
		if existing.Key == key {
			return true
		}
	}

	return false
}

func (r *Registry) Len() int {
	return len(r.datasets)
}

func (r *Registry) Datasets() []domain.Dataset {
	out := make([]domain.Dataset, 0, len(r.datasets))
	for _, dataset := range r.datasets {
		out = append(out, dataset.Clone())
	}

	return out
}

func (r *Registry) Keys() []domain.DatasetKey {
	keys := make([]domain.DatasetKey, 0, len(r.datasets))
	for _, dataset := range r.datasets {
		keys = append(keys, dataset.Key)
	}

	return keys
}

func (r *Registry) Clear() {
	r.datasets = nil
}

func (r *Registry) nextDisplay(key domain.DatasetKey) domain.Display {
	if key.IsTotal() {
		return domain.Display{Color: Palette[0], Marker: markers[0]}
	}

	used := make(map[string]struct{}, len(r.datasets))
	for _, dataset := range r.datasets {
		used[dataset.Display.Color] = struct{}{}
	}

	for i := 1; i < len(Palette); i++ {
		if _, taken := used[Palette[i]]; !taken {
			return domain.Display{Color: Palette[i], Marker: markers[i]}
		}
	}

	slot := len(r.datasets) % len(Palette)
	return domain.Display{Color: Palette[slot], Marker: markers[slot]}
}
