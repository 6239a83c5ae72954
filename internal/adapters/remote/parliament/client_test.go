package parliament

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports/mocks"
)

var polledAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

const petitionJSON = `{
  "links": {"self": "https://petition.parliament.uk/petitions/700001.json"},
  "data": {
    "type": "petition",
    "id": 700001,
    "links": {"self": "https://petition.parliament.uk/petitions/700001.json"},
    "attributes": {
      "action": "Fund <b>public</b> libraries &amp; archives",
      "background": "<script>alert(1)</script>Libraries matter.",
      "state": "open",
      "signature_count": 15230,
      "created_at": "2024-01-05T10:00:00.000Z",
      "response_threshold_reached_at": "2024-02-01T08:30:00.000Z",
      "debate_threshold_reached_at": null,
      "signatures_by_country": [
        {"name": "United Kingdom", "code": "GB", "signature_count": 15000},
        {"name": "France", "code": "FR", "signature_count": 230}
      ],
      "signatures_by_region": [
        {"name": "London", "ons_code": "h", "signature_count": 4000}
      ],
      "signatures_by_constituency": [
        {"name": "Cities of London and Westminster", "ons_code": "E14000639", "mp": "Someone", "signature_count": 120}
      ]
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(polledAt).Maybe()

	opts.BaseURL = server.URL
	opts.HTTPClient = server.Client()
	opts.Clock = clock
	opts.Logger = zaptest.NewLogger(t)
	if opts.Backoff == 0 {
		opts.Backoff = time.Millisecond
	}

	return NewClient(opts)
}

func TestFetchPetitionMapsSnapshot(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/petitions/700001.json", r.URL.Path)
		_, _ = w.Write([]byte(petitionJSON))
	}, Options{})

	snapshot, err := client.FetchPetition(context.Background(), 700001)
	require.NoError(t, err)

	petition := snapshot.Petition
	assert.Equal(t, domain.PetitionID(700001), petition.ID)
	assert.Equal(t, "Fund public libraries & archives", petition.Action)
	assert.Equal(t, "Libraries matter.", petition.Background)
	assert.Equal(t, "https://petition.parliament.uk/petitions/700001", petition.URL)
	assert.Equal(t, domain.PetitionStateOpen, petition.State)
	assert.False(t, petition.Archived)
	assert.Equal(t, int64(15230), petition.Signatures)
	assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), petition.CreatedAt)
	assert.True(t, petition.DebateThresholdReachedAt.IsZero())
	assert.Equal(t, polledAt, petition.PolledAt)

	record := snapshot.Record
	assert.Equal(t, polledAt, record.Timestamp)
	assert.Equal(t, int64(15230), record.Total)
	fr, ok := record.LocaleCount(domain.GeographyCountry, "fr")
	require.True(t, ok)
	assert.Equal(t, int64(230), fr.Count)
	london, ok := record.LocaleCount(domain.GeographyRegion, "H")
	require.True(t, ok)
	assert.Equal(t, "London", london.Locale.Name)
	_, ok = record.LocaleCount(domain.GeographyConstituency, "E14000639")
	assert.True(t, ok)
}

func TestFetchPetitionArchived(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"type":"archived-petition","id":5,"attributes":{"action":"Old","state":"closed","signature_count":3}}}`))
	}, Options{})

	snapshot, err := client.FetchPetition(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, snapshot.Petition.Archived)
	assert.False(t, snapshot.Petition.IsOpen())
	assert.Empty(t, snapshot.Record.Locales[domain.GeographyCountry])
}

func TestFetchPetitionNotFoundDoesNotRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, Options{Retries: 3})

	_, err := client.FetchPetition(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrPetitionNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchPetitionRetriesTransientStatuses(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(petitionJSON))
	}, Options{Retries: 3})

	_, err := client.FetchPetition(context.Background(), 700001)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPetitionGivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, Options{Retries: 2})

	_, err := client.FetchPetition(context.Background(), 700001)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "giving up after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPetitionDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}, Options{Retries: 2})

	_, err := client.FetchPetition(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestListPageReportsNext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/petitions.json", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		if r.URL.Query().Get("page") == "1" {
			_, _ = w.Write([]byte(`{"links":{"next":"https://petition.parliament.uk/petitions.json?page=2&state=open"},"data":[{"id":1},{"id":2}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"links":{"next":null},"data":[{"id":3}]}`))
	}, Options{})

	ids, more, err := client.ListPage(context.Background(), domain.PetitionStateOpen, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.PetitionID{1, 2}, ids)
	assert.True(t, more)

	ids, more, err = client.ListPage(context.Background(), domain.PetitionStateOpen, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.PetitionID{3}, ids)
	assert.False(t, more)
}

func TestListPageDefaultsToAllStates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		_, _ = w.Write([]byte(`{"links":{},"data":[]}`))
	}, Options{})

	ids, more, err := client.ListPage(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.False(t, more)
}

func TestRetryHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, Options{Retries: 5, Backoff: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchPetition(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPlainTextStripsMarkup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", plainText(""))
	assert.Equal(t, "Tom & Jerry", plainText("<i>Tom</i> &amp; Jerry"))
	assert.Equal(t, "safe", plainText(`<a href="javascript:x()">safe</a>`))
}
