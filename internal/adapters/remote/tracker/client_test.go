package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
	"github.com/bnema/petition-tracker/internal/ports/mocks"
)

var fetchedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fetchedAt).Maybe()

	return &Client{
		BaseURL:    server.URL + "/api",
		Token:      "secret-token",
		HTTPClient: server.Client(),
		Clock:      clock,
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestGetPetitionDecodesPetition(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/petition/700001", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, `{"petition":{"id":700001,"action":"Fund libraries","state":"open","signatures":12345,"pt_created_at":"2024-01-02T03:04:05Z","response_threshold_reached_at":"2024-02-01T00:00:00Z"}}`)
	})

	petition, err := client.GetPetition(context.Background(), 700001)
	require.NoError(t, err)
	assert.Equal(t, domain.PetitionID(700001), petition.ID)
	assert.Equal(t, "Fund libraries", petition.Action)
	assert.Equal(t, domain.PetitionStateOpen, petition.State)
	assert.Equal(t, int64(12345), petition.Signatures)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), petition.CreatedAt)
	assert.True(t, petition.DebateThresholdReachedAt.IsZero())
	assert.False(t, petition.ResponseThresholdReachedAt.IsZero())
}

func TestGetPetitionNotFoundWrapsDomainError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"message":"Petition not found"}`)
	})

	_, err := client.GetPetition(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPetitionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "Petition not found", statusErr.Message)
}

func TestServerErrorIsNotNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{"message":"boom"}`)
	})

	_, err := client.FetchTotal(context.Background(), 1, domain.AllTime())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "status 500: boom")
}

func TestListPetitionsSendsPaging(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/petitions", r.URL.Path)
		assert.Equal(t, "closed", r.URL.Query().Get("state"))
		assert.Equal(t, "2", r.URL.Query().Get("index"))
		assert.Equal(t, "10", r.URL.Query().Get("items"))
		writeJSON(t, w, http.StatusOK, `{"state":"closed","petitions":[{"id":1,"action":"A","state":"closed"},{"id":2,"action":"B","state":"closed"}],"meta":{"items":{"total":42,"on_page":2,"per_page":10}}}`)
	})

	page, err := client.ListPetitions(context.Background(), domain.PetitionListQuery{State: domain.PetitionStateClosed, Index: 2, Items: 10})
	require.NoError(t, err)
	require.Len(t, page.Petitions, 2)
	assert.Equal(t, "B", page.Petitions[1].Action)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 5, page.Pages())
	assert.True(t, page.HasNext())
}

func TestFetchTotalSendsSinceWindow(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/petition/7/signatures", r.URL.Path)
		assert.JSONEq(t, `{"hours":12}`, r.URL.Query().Get("since"))
		assert.Empty(t, r.URL.Query().Get("between"))
		writeJSON(t, w, http.StatusOK, `{"signatures":[{"timestamp":"10-03-2024T11:00:00","total":20},{"timestamp":"10-03-2024T10:00:00","total":10}]}`)
	})

	dataset, err := client.FetchTotal(context.Background(), 7, domain.SinceWindow(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.TotalKey, dataset.Key)
	assert.Equal(t, fetchedAt, dataset.FetchedAt)
	require.Len(t, dataset.Samples, 2)
	assert.Equal(t, int64(10), dataset.Samples[0].Count)
	assert.Equal(t, time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC), dataset.Samples[1].Timestamp)
}

func TestFetchTotalSendsBetweenWindow(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var between map[string]string
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("between")), &between))
		assert.Equal(t, "2024-03-01T00:00:00Z", between["gt"])
		assert.Equal(t, "2024-03-02T00:00:00Z", between["lt"])
		writeJSON(t, w, http.StatusOK, `{"signatures":[]}`)
	})

	dataset, err := client.FetchTotal(context.Background(), 7, domain.BetweenWindow(from, to))
	require.NoError(t, err)
	assert.Empty(t, dataset.Samples)
}

func TestFetchLocaleUsesLocaleCount(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/petition/7/signatures_by/country/GB", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, `{"signatures":[{"timestamp":"10-03-2024T10:00:00","total":100,"signatures_by_country":{"code":"GB","name":"United Kingdom","count":90}}]}`)
	})

	dataset, err := client.FetchLocale(context.Background(), 7, domain.GeographyCountry, domain.Locale{Code: "gb"}, domain.AllTime(), ports.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleKey(domain.GeographyCountry, "GB"), dataset.Key)
	assert.Equal(t, "United Kingdom", dataset.Locale.Name)
	assert.Equal(t, "United Kingdom", dataset.Label)
	require.Len(t, dataset.Samples, 1)
	assert.Equal(t, int64(90), dataset.Samples[0].Count)
	assert.False(t, dataset.Placeholder)
}

func TestFetchLocaleNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"message":"No matching results found for petition id: 7"}`)
	})
	locale := domain.Locale{Code: "E14000639", Name: "Cities of London and Westminster"}

	_, err := client.FetchLocale(context.Background(), 7, domain.GeographyConstituency, locale, domain.AllTime(), ports.FetchOptions{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	dataset, err := client.FetchLocale(context.Background(), 7, domain.GeographyConstituency, locale, domain.AllTime(), ports.FetchOptions{EmptyOnNotFound: true})
	require.NoError(t, err)
	assert.True(t, dataset.Placeholder)
	assert.Empty(t, dataset.Samples)
	assert.Equal(t, "Cities of London and Westminster", dataset.Label)
}

func TestFetchLocaleRejectsUnknownGeography(t *testing.T) {
	t.Parallel()

	client := &Client{BaseURL: "http://127.0.0.1:1"}
	_, err := client.FetchLocale(context.Background(), 7, domain.Geography("planet"), domain.Locale{Code: "X"}, domain.AllTime(), ports.FetchOptions{})
	require.ErrorIs(t, err, domain.ErrUnknownGeography)
}

func TestBuildURLValidatesBase(t *testing.T) {
	t.Parallel()

	_, err := buildURL("", "petitions", nil)
	require.Error(t, err)

	_, err = buildURL("ftp://example.com", "petitions", nil)
	require.Error(t, err)

	endpoint, err := buildURL("https://example.com/api", "petitions", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/petitions", endpoint)
}
