package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(now time.Time) application.DetailSnapshot {
	total := domain.NewTotalDataset([]domain.SignatureSample{
		{Timestamp: now.Add(-2 * time.Hour), Count: 9_000},
		{Timestamp: now.Add(-time.Hour), Count: 11_500},
		{Timestamp: now, Count: 12_345},
	}, now).WithDisplay(domain.Display{Color: "#00FFFF", Marker: "●"})

	france := domain.Locale{Code: "FR", Name: "France"}
	french := domain.NewLocaleDataset(domain.GeographyCountry, france, []domain.SignatureSample{
		{Timestamp: now.Add(-2 * time.Hour), Count: 40},
		{Timestamp: now, Count: 95},
	}, now).WithDisplay(domain.Display{Color: "#FF00FF", Marker: "◆"})

	atlantis := domain.Locale{Code: "AT", Name: "Atlantis"}
	empty := domain.NewPlaceholderDataset(domain.GeographyCountry, atlantis, now).
		WithDisplay(domain.Display{Color: "#FFFF00", Marker: "■"})

	return application.DetailSnapshot{
		Petition: domain.Petition{
			ID:                         700001,
			Action:                     "Fund more public libraries",
			State:                      domain.PetitionStateOpen,
			Signatures:                 12_345,
			ResponseThresholdReachedAt: now.Add(-90 * time.Minute),
			PolledAt:                   now.Add(-10 * time.Minute),
		},
		Window: domain.SinceWindow(domain.Day),
		Selections: []domain.Selection{
			{Geography: domain.GeographyCountry, Locale: france},
			{Geography: domain.GeographyCountry, Locale: atlantis},
		},
		Datasets:     []domain.Dataset{total, french, empty},
		TotalVisible: true,
		MaxDatasets:  domain.DefaultMaxDatasets,
		TakenAt:      now,
	}
}

func TestRenderDetail(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	output, err := RenderDetail(testSnapshot(now), RenderOptions{Now: now, Width: 40, Height: 8})

	require.NoError(t, err)
	assert.Contains(t, output, "Fund more public libraries")
	assert.Contains(t, output, "#700001")
	assert.Contains(t, output, "12,345 signatures")
	assert.Contains(t, output, "updated 10 minutes ago")
	assert.Contains(t, output, "reached 10 Mar 2024")
	assert.Contains(t, output, " 12% of 100,000")
	assert.Contains(t, output, "window: last 1d")
	assert.Contains(t, output, "12,345 (+3,345)")
	assert.Contains(t, output, "France (country FR)")
	assert.Contains(t, output, "95 (+55)")
	assert.Contains(t, output, "Atlantis (country AT)  no data")
	assert.Contains(t, output, "2/11 locales charted")
	assert.Contains(t, output, "12.3k")
	assert.Contains(t, output, "10 Mar 10:00")
}

func TestRenderDetailWithoutSamples(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	snapshot := application.DetailSnapshot{
		Petition:    domain.Petition{ID: 42, State: domain.PetitionStateClosed, Archived: true},
		Window:      domain.AllTime(),
		Datasets:    []domain.Dataset{domain.NewTotalDataset(nil, now)},
		MaxDatasets: domain.DefaultMaxDatasets,
	}

	output := Detail(snapshot, RenderOptions{Now: now})

	assert.Contains(t, output, "Petition 42")
	assert.Contains(t, output, "closed (archived)")
	assert.Contains(t, output, "window: all time")
	assert.Contains(t, output, "No signatures recorded in this window.")
	assert.Contains(t, output, "Total  no data")
	assert.Contains(t, output, "0/11 locales charted")
}

func TestRenderDetailBetweenWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	snapshot := testSnapshot(now)
	snapshot.Window = domain.BetweenWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	output := Detail(snapshot, RenderOptions{Now: now})

	assert.Contains(t, output, "window: 08 Mar 12:00 to 09 Mar 12:00")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[=====-----]", renderProgressBar(50, false, 10, s))
	assert.Equal(t, "[==========]", renderProgressBar(100, true, 10, s))
	assert.Equal(t, "[----------]", renderProgressBar(0, false, 10, s))
	assert.Empty(t, renderProgressBar(50, false, 0, s))
}

func TestPlotPlacesMarkersAtExtremes(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	dataset := domain.NewTotalDataset([]domain.SignatureSample{
		{Timestamp: now.Add(-time.Hour), Count: 100},
		{Timestamp: now, Count: 200},
	}, now).WithDisplay(domain.Display{Marker: "x"})

	lines := strings.Split(plot([]domain.Dataset{dataset}, 10, 5, newStyles()), "\n")

	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "200 ┤"))
	assert.True(t, strings.HasSuffix(lines[0], "x"))
	assert.True(t, strings.HasPrefix(lines[4], "100 ┤x"))
	assert.Contains(t, lines[6], "10 Mar 11:00")
	assert.Contains(t, lines[6], "10 Mar 12:00")
}

func TestRenderList(t *testing.T) {
	output, err := RenderList(domain.PetitionPage{
		Petitions: []domain.Petition{
			{ID: 1, Action: "Ban something", State: domain.PetitionStateOpen, Signatures: 1_234_567},
			{ID: 2, Action: strings.Repeat("long action ", 20), State: domain.PetitionStateClosed, Signatures: 12},
		},
		Index:   1,
		PerPage: 2,
		Total:   5,
	}, RenderOptions{Width: 80})

	require.NoError(t, err)
	assert.Contains(t, output, "Petitions")
	assert.Contains(t, output, "1,234,567")
	assert.Contains(t, output, "Ban something")
	assert.Contains(t, output, "…")
	assert.Contains(t, output, "page 2/3 · 5 petitions")
}

func TestRenderListEmpty(t *testing.T) {
	output, err := RenderList(domain.PetitionPage{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "No petitions match.")
}

func TestRenderViews(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	output, err := RenderViews([]domain.SavedView{
		{
			PetitionID: 700001,
			Name:       "Libraries",
			Window:     domain.SinceWindow(2 * domain.Week),
			Selections: []domain.Selection{{Geography: domain.GeographyCountry, Locale: domain.Locale{Code: "FR"}}},
			ShowTotal:  true,
			UpdatedAt:  now.Add(-3 * time.Hour),
		},
		{PetitionID: 42},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "views: 2")
	assert.Contains(t, output, "Libraries")
	assert.Contains(t, output, "last 2w · total, country:FR")
	assert.Contains(t, output, "saved 3 hours ago")
	assert.Contains(t, output, "Petition 42")
	assert.Contains(t, output, "last 1w · total")
}

func TestRenderViewsEmpty(t *testing.T) {
	output, err := RenderViews(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Nothing watched yet.")
}

func TestNotFound(t *testing.T) {
	assert.Contains(t, NotFound(9), "Petition 9 not found")
}
