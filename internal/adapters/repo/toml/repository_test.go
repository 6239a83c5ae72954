package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/petition-tracker/internal/config"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, viewsPath string) *Repository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(config.KeyViewsPath, viewsPath)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "views.toml"))
	updated := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	first := domain.SavedView{
		PetitionID: 700001,
		Name:       "Hold a general election",
		Window:     domain.SinceWindow(2 * domain.Week),
		Selections: []domain.Selection{
			{Geography: domain.GeographyCountry, Locale: domain.Locale{Code: "GB", Name: "United Kingdom"}},
			{Geography: domain.GeographyConstituency, Locale: domain.Locale{Code: "E14000530"}},
		},
		ShowTotal: true,
		UpdatedAt: updated,
	}
	second := domain.SavedView{
		PetitionID: 241584,
		Window: domain.BetweenWindow(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		),
	}
	third := domain.SavedView{PetitionID: 12, Window: domain.AllTime()}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))
	require.NoError(t, repo.Save(context.Background(), third))

	got, err := repo.GetByPetitionID(context.Background(), first.PetitionID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	views, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.PetitionID{12, 241584, 700001}, []domain.PetitionID{views[0].PetitionID, views[1].PetitionID, views[2].PetitionID})
	assert.Equal(t, second.Window, views[1].Window)
	assert.Equal(t, domain.AllTime(), views[0].Window)
}

func TestRepositorySaveReplacesExistingView(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "views.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.SavedView{PetitionID: 1, Window: domain.SinceWindow(domain.Day)}))
	require.NoError(t, repo.Save(context.Background(), domain.SavedView{PetitionID: 1, Window: domain.SinceWindow(domain.Week), Name: "renamed"}))

	views, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "renamed", views[0].Name)
	assert.Equal(t, domain.SinceWindow(domain.Week), views[0].Window)
}

func TestRepositoryGetMissingViewReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "views.toml"))

	_, err := repo.GetByPetitionID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrViewNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "views.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.SavedView{PetitionID: 1}))
	require.NoError(t, repo.Save(context.Background(), domain.SavedView{PetitionID: 2}))

	require.NoError(t, repo.Delete(context.Background(), 1))
	require.ErrorIs(t, repo.Delete(context.Background(), 1), domain.ErrViewNotFound)

	views, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.PetitionID(2), views[0].PetitionID)
}

func TestRepositorySaveRejectsInvalidView(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	repo := newTestRepository(t, viewsPath)

	err := repo.Save(context.Background(), domain.SavedView{
		PetitionID: 1,
		Selections: []domain.Selection{
			{Geography: domain.GeographyCountry, Locale: domain.Locale{Code: "GB"}},
			{Geography: domain.GeographyRegion, Locale: domain.Locale{Code: "gb"}},
		},
	})
	require.ErrorIs(t, err, domain.ErrLocaleAlreadySelected)

	_, statErr := os.Stat(viewsPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRepositoryListInvalidTOMLReturnsError(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	require.NoError(t, os.WriteFile(viewsPath, []byte("views = ["), 0o600))

	_, err := newTestRepository(t, viewsPath).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode views file")
}

func TestRepositoryListUnknownGeographyReturnsError(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	require.NoError(t, os.WriteFile(viewsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[views]]",
		"petition_id = 5",
		"",
		"[[views.selections]]",
		`geography = "ward"`,
		`code = "X1"`,
		"",
	}, "\n")), 0o600))

	_, err := newTestRepository(t, viewsPath).List(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownGeography)
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "views.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.SavedView{PetitionID: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllViews(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	repoA := newTestRepository(t, viewsPath)
	repoB := newTestRepository(t, viewsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, base int64) {
		defer wg.Done()
		<-start
		for i := int64(0); i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.SavedView{PetitionID: domain.PetitionID(base + i)})
		}
	}
	go write(repoA, 1_000)
	go write(repoB, 2_000)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	views, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	repo := newTestRepository(t, viewsPath)

	require.NoError(t, repo.Save(context.Background(), domain.SavedView{PetitionID: 1, Window: domain.SinceWindow(12 * time.Hour)}))

	data, err := os.ReadFile(viewsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "since = '12h'")

	info, err := os.Stat(viewsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(viewsFileMode), info.Mode().Perm())
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	viewsPath := filepath.Join(t.TempDir(), "views.toml")
	require.NoError(t, os.WriteFile(viewsPath, []byte("version = 999\n\nviews = []\n"), 0o600))

	_, err := newTestRepository(t, viewsPath).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported views schema version")
}
