package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bnema/petition-tracker/internal/adapters/apiwire"
	"github.com/bnema/petition-tracker/internal/adapters/remote/tracker"
	"github.com/bnema/petition-tracker/internal/adapters/store/sqlite"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
	"github.com/bnema/petition-tracker/internal/ports/mocks"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return now }

func seededStore(t *testing.T) *sqlite.Store {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "petitions.db"), fixedClock{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.SavePetition(ctx, domain.Petition{ID: 1, Action: "Open one", State: domain.PetitionStateOpen, Signatures: 300}))
	require.NoError(t, store.SavePetition(ctx, domain.Petition{ID: 2, Action: "Closed one", State: domain.PetitionStateClosed, Signatures: 50}))
	require.NoError(t, store.SavePetition(ctx, domain.Petition{ID: 3, Action: "Quiet", State: domain.PetitionStateOpen}))

	for i, total := range []int64{100, 200, 300} {
		require.NoError(t, store.AddRecord(ctx, domain.Record{
			PetitionID: 1,
			Timestamp:  now.Add(time.Duration(i-2) * 6 * time.Hour),
			Total:      total,
			Locales: map[domain.Geography][]domain.LocaleCount{
				domain.GeographyCountry: {
					{Locale: domain.Locale{Code: "GB", Name: "United Kingdom"}, Count: total - 5},
					{Locale: domain.Locale{Code: "FR", Name: "France"}, Count: 5},
				},
			},
		}))
	}

	return store
}

func newTestServer(t *testing.T, store ports.PetitionStore, token string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(NewRouter(store, Options{Token: token, Clock: fixedClock{}, Logger: zaptest.NewLogger(t)}))
	t.Cleanup(server.Close)

	return server
}

func getJSON(t *testing.T, server *httptest.Server, path string, out any) int {
	t.Helper()

	resp, err := server.Client().Get(server.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))

	return resp.StatusCode
}

func TestListPetitions(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.PetitionsResponse
	status := getJSON(t, server, "/petitions?state=open&items=1", &payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "open", payload.State)
	require.Len(t, payload.Petitions, 1)
	assert.Equal(t, int64(1), payload.Petitions[0].ID)
	assert.Equal(t, 2, payload.Meta.Items.Total)
	assert.Equal(t, 2, payload.Meta.Pages)
	assert.Contains(t, payload.Meta.Links["next"], "index=1")
	assert.NotContains(t, payload.Meta.Links, "prev")
}

func TestListPetitionsRejectsBadState(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.ErrorResponse
	status := getJSON(t, server, "/petitions?state=pending", &payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, payload.Message, "invalid petition state")
}

func TestGetPetitionWithSignatures(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.PetitionResponse
	status := getJSON(t, server, "/petition/1?signatures=true", &payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Open one", payload.Petition.Action)
	require.NotNil(t, payload.Signatures)
	assert.Equal(t, int64(300), payload.Signatures.Total)
	require.Len(t, payload.Signatures.ByCountry, 2)
	assert.Equal(t, "GB", payload.Signatures.ByCountry[0].Code)

	payload = apiwire.PetitionResponse{}
	status = getJSON(t, server, "/petition/1", &payload)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, payload.Signatures)
}

func TestPetitionErrors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, server, "/petition/99", &payload))
	assert.Equal(t, "petition 99 not found", payload.Message)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, server, "/petition/abc", &payload))
	assert.Equal(t, http.StatusNotFound, getJSON(t, server, "/petition/3/signatures", &payload))
	assert.Equal(t, "No matching results found for petition id: 3", payload.Message)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, server, "/petition/1/signatures_by/planet/GB", &payload))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, server, "/petition/1/signatures_by/country/Atlantis", &payload))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, server, "/petition/1/signatures?since=%7B%7D", &payload))
	assert.Equal(t, http.StatusNotFound, getJSON(t, server, "/nowhere", &payload))
}

func TestSignaturesSince(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.SignaturesResponse
	status := getJSON(t, server, "/petition/1/signatures?since="+url.QueryEscape(`{"hours":8}`), &payload)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, payload.Signatures, 2)
	assert.Equal(t, "10-03-2024T06:00:00", payload.Signatures[0].Timestamp)
	assert.Equal(t, int64(300), payload.Signatures[1].Total)
	assert.Equal(t, 2, payload.Meta.Items.Total)
}

func TestSignaturesByLocale(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.SignaturesResponse
	status := getJSON(t, server, "/petition/1/signatures_by/countries/gb", &payload)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, payload.Signatures, 3)
	first := payload.Signatures[0]
	require.NotNil(t, first.ByCountry)
	assert.Equal(t, int64(95), first.ByCountry.Count)
	assert.Equal(t, "United Kingdom", first.ByCountry.Name)

	var missing apiwire.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, server, "/petition/1/signatures_by/country/DE", &missing))
}

func TestSignaturesByGeography(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "")

	var payload apiwire.PetitionResponse
	status := getJSON(t, server, "/petition/1/signatures_by/country", &payload)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, payload.Signatures)
	assert.Len(t, payload.Signatures.ByCountry, 2)
	assert.Empty(t, payload.Signatures.ByRegion)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "s3cret")

	resp, err := server.Client().Get(server.URL + "/petitions")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/petitions", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = server.Client().Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err = server.Client().Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStoreFailureIsInternalError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockPetitionStore(t)
	store.EXPECT().ListPetitions(mock.Anything, mock.Anything).Return(domain.PetitionPage{}, errors.New("disk on fire")).Once()
	server := newTestServer(t, store, "")

	var payload apiwire.ErrorResponse
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, server, "/petitions", &payload))
	assert.Equal(t, "internal error", payload.Message)
}

func TestTrackerClientRoundTrip(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, seededStore(t), "token")
	client := &tracker.Client{BaseURL: server.URL, Token: "token", HTTPClient: server.Client(), Clock: fixedClock{}}
	ctx := context.Background()

	petition, err := client.GetPetition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Open one", petition.Action)

	total, err := client.FetchTotal(ctx, 1, domain.AllTime())
	require.NoError(t, err)
	require.Len(t, total.Samples, 3)
	assert.Equal(t, int64(300), total.Samples[2].Count)

	gb, err := client.FetchLocale(ctx, 1, domain.GeographyCountry, domain.Locale{Code: "GB"}, domain.SinceWindow(domain.Day), ports.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", gb.Label)
	assert.Len(t, gb.Samples, 3)

	empty, err := client.FetchLocale(ctx, 1, domain.GeographyCountry, domain.Locale{Code: "DE"}, domain.AllTime(), ports.FetchOptions{EmptyOnNotFound: true})
	require.NoError(t, err)
	assert.True(t, empty.Placeholder)

	_, err = client.GetPetition(ctx, 404)
	require.ErrorIs(t, err, domain.ErrPetitionNotFound)

	page, err := client.ListPetitions(ctx, domain.PetitionListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}
