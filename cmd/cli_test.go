package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/bnema/petition-tracker/internal/adapters/httpapi"
	sqlitestore "github.com/bnema/petition-tracker/internal/adapters/store/sqlite"
	"github.com/bnema/petition-tracker/internal/config"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/version"
)

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "pt "+version.Version+"\n", stdout)

	stdout, _, err = executeCLI(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestPetitionsListsTrackedPetitions(t *testing.T) {
	startTrackerAPI(t, "")

	stdout, _, err := executeCLI(t, t.TempDir(), "petitions", "--state", "all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fund more public libraries")
	assert.Contains(t, stdout, "Keep the night buses")
	assert.Contains(t, stdout, "page 1/1 · 2 petitions")
}

func TestPetitionsJSONOutput(t *testing.T) {
	startTrackerAPI(t, "")

	stdout, _, err := executeCLI(t, t.TempDir(), "petitions", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Petitions\"")
	assert.NotContains(t, stdout, "Keep the night buses")
}

func TestPetitionsRejectsUnknownState(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "petitions", "--state", "pending")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPetitionState)
}

func TestPetitionRendersChart(t *testing.T) {
	startTrackerAPI(t, "")

	stdout, _, err := executeCLI(t, t.TempDir(), "petition", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fund more public libraries")
	assert.Contains(t, stdout, "300 signatures")
	assert.Contains(t, stdout, "window: last 1w")
	assert.Contains(t, stdout, "0/11 locales charted")
}

func TestPetitionWithLocalesJSONOutput(t *testing.T) {
	startTrackerAPI(t, "")

	stdout, _, err := executeCLI(t, t.TempDir(), "petition", "1", "--geo", "country:GB", "--geo", "country:FR", "--since", "2d", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Label\": \"United Kingdom\"")
	assert.Contains(t, stdout, "\"Label\": \"France\"")
	assert.NotContains(t, stdout, "\"Label\": \"Total\"")
}

func TestPetitionNotFound(t *testing.T) {
	startTrackerAPI(t, "")

	_, _, err := executeCLI(t, t.TempDir(), "petition", "999", "--json")
	require.Error(t, err)
	assert.EqualError(t, err, "petition 999 not found")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPetitionWithoutRecordsInWindowRendersEmptyTotal(t *testing.T) {
	startTrackerAPI(t, "")
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "petition", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Keep the night buses")
	assert.Contains(t, stdout, "Total  no data")

	stdout, _, err = executeCLI(t, home, "petition", "1", "--between", "2020-01-01,2020-01-02", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"Label\": \"Total\"")
	assert.Contains(t, stdout, "\"Placeholder\": true")

	stdout, _, err = executeCLI(t, home, "watch", "add", "2")
	require.NoError(t, err)
	assert.Equal(t, "watching petition 2: Keep the night buses\n", stdout)
}

func TestPetitionRejectsBadArguments(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "petition", "abc")
	assert.EqualError(t, err, `invalid petition id "abc"`)

	_, _, err = executeCLI(t, home, "petition", "1", "--since", "1d", "--between", "2024-01-01,2024-01-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")

	_, _, err = executeCLI(t, home, "petition", "1", "--geo", "GB")
	assert.EqualError(t, err, `parse --geo "GB": expected KIND:CODE`)

	_, _, err = executeCLI(t, home, "petition", "1", "--between", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestWatchFlowReusesSavedView(t *testing.T) {
	startTrackerAPI(t, "")
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "watch", "add", "1", "--geo", "country:FR", "--since", "3d")
	require.NoError(t, err)
	assert.Equal(t, "watching petition 1: Fund more public libraries\n", stdout)

	stdout, _, err = executeCLI(t, home, "watch", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "views: 1")
	assert.Contains(t, stdout, "last 3d · country:FR")

	stdout, _, err = executeCLI(t, home, "petition", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "France")
	assert.Contains(t, stdout, "window: last 3d")
	assert.Contains(t, stdout, "1/11 locales charted")

	stdout, _, err = executeCLI(t, home, "watch", "rm", "1")
	require.NoError(t, err)
	assert.Equal(t, "stopped watching petition 1\n", stdout)

	_, _, err = executeCLI(t, home, "watch", "rm", "1")
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
}

func TestWatchAddUnknownPetition(t *testing.T) {
	startTrackerAPI(t, "")

	_, _, err := executeCLI(t, t.TempDir(), "watch", "add", "42")
	assert.EqualError(t, err, "petition 42 not found")
}

func TestAuthSetRequiresTokenFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "auth", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"token\" not set")
}

func TestAuthTokenIsSentToTrackerAPI(t *testing.T) {
	startTrackerAPI(t, "s3cret")
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "petitions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")

	stdout, _, err := executeCLI(t, home, "auth", "set", "--token", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "API token stored\n", stdout)

	stdout, _, err = executeCLI(t, home, "petitions")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fund more public libraries")

	_, _, err = executeCLI(t, home, "auth", "remove")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "petitions")
	require.Error(t, err)
}

func TestPollOnceRecordsSnapshots(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/petitions/1.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = fmt.Fprint(w, `{"data":{"type":"petition","id":1,"links":{"self":"https://petition.parliament.uk/petitions/1.json"},"attributes":{"action":"Fund more public libraries","state":"open","signature_count":450,"signatures_by_country":[{"name":"United Kingdom","code":"GB","signature_count":440}]}}}`)
	}))
	defer upstream.Close()
	t.Setenv("PT_POLL_BASE_URL", upstream.URL)

	home := t.TempDir()
	storePath := filepath.Join(home, config.Dir, "petitions.db")
	store := seedStore(t, storePath)
	require.NoError(t, store.Close())

	stdout, _, err := executeCLI(t, home, "poll", "--once")
	require.NoError(t, err)
	assert.Regexp(t, `^poll [0-9a-f-]{36}: recorded 1 petitions, 0 failed`, stdout)

	store, err = sqlitestore.Open(context.Background(), storePath, nil)
	require.NoError(t, err)
	defer store.Close()

	latest, err := store.LatestRecord(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(450), latest.Total)
	gb, ok := latest.LocaleCount(domain.GeographyCountry, "GB")
	require.True(t, ok)
	assert.Equal(t, int64(440), gb.Count)
}

func TestRunScheduleStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	err := runSchedule(ctx, "@every 1h", zaptest.NewLogger(t), func(context.Context) {
		runs++
		cancel()
	})

	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestRunScheduleRejectsBadSpec(t *testing.T) {
	err := runSchedule(context.Background(), "every now and then", zaptest.NewLogger(t), func(context.Context) {
		t.Fatal("job must not run")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `schedule poll "every now and then"`)
}

func TestServeHTTPShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serveHTTP(ctx, server, listener, zaptest.NewLogger(t))
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// seedStore creates a record store with an open petition holding three
// records over the last day and a closed petition with none.
func seedStore(t *testing.T, path string) *sqlitestore.Store {
	t.Helper()
	ctx := context.Background()

	store, err := sqlitestore.Open(ctx, path, nil)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SavePetition(ctx, domain.Petition{ID: 1, Action: "Fund more public libraries", State: domain.PetitionStateOpen, Signatures: 300}))
	require.NoError(t, store.SavePetition(ctx, domain.Petition{ID: 2, Action: "Keep the night buses", State: domain.PetitionStateClosed, Signatures: 20}))
	for i, total := range []int64{100, 200, 300} {
		require.NoError(t, store.AddRecord(ctx, domain.Record{
			PetitionID: 1,
			Timestamp:  now.Add(time.Duration(i-2) * 6 * time.Hour),
			Total:      total,
			Locales: map[domain.Geography][]domain.LocaleCount{
				domain.GeographyCountry: {
					{Locale: domain.Locale{Code: "GB", Name: "United Kingdom"}, Count: total - 10},
					{Locale: domain.Locale{Code: "FR", Name: "France"}, Count: 10},
				},
			},
		}))
	}

	return store
}

// startTrackerAPI serves a seeded store and points the CLI at it.
func startTrackerAPI(t *testing.T, token string) {
	t.Helper()

	store := seedStore(t, filepath.Join(t.TempDir(), "petitions.db"))
	t.Cleanup(func() { _ = store.Close() })

	server := httptest.NewServer(httpapi.NewRouter(store, httpapi.Options{Token: token, Logger: zaptest.NewLogger(t)}))
	t.Cleanup(server.Close)
	t.Setenv("PT_API_BASE_URL", server.URL)
}
