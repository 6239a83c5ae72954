// Package parliament reads petitions from the UK Parliament petitions service.
package parliament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

const (
	DefaultBaseURL   = "https://petition.parliament.uk"
	maxResponseBytes = 16 << 20
)

var retryStatuses = map[int]bool{
	http.StatusPreconditionFailed:    true,
	http.StatusRequestEntityTooLarge: true,
	http.StatusTooManyRequests:       true,
	http.StatusInternalServerError:   true,
	http.StatusBadGateway:            true,
	http.StatusServiceUnavailable:    true,
	http.StatusGatewayTimeout:        true,
}

type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// RequestsPerSecond paces every request made through the client. Zero
	// disables pacing.
	RequestsPerSecond float64
	Retries           int
	Backoff           time.Duration
	Clock             ports.Clock
	Logger            *zap.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	retries    int
	backoff    time.Duration
	clock      ports.Clock
	logger     *zap.Logger
}

var _ ports.ParliamentAPI = (*Client)(nil)

func NewClient(opts Options) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		timeout:    opts.RequestTimeout,
		limiter:    rate.NewLimiter(rate.Inf, 0),
		retries:    opts.Retries,
		backoff:    opts.Backoff,
		clock:      opts.Clock,
		logger:     opts.Logger,
	}
	if client.baseURL == "" {
		client.baseURL = DefaultBaseURL
	}
	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}
	if client.timeout <= 0 {
		client.timeout = 10 * time.Second
	}
	if opts.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	if client.retries < 0 {
		client.retries = 0
	}
	if client.backoff <= 0 {
		client.backoff = time.Second
	}
	if client.clock == nil {
		client.clock = ports.SystemClock{}
	}
	if client.logger == nil {
		client.logger = zap.NewNop()
	}

	return client
}

func (c *Client) FetchPetition(ctx context.Context, id domain.PetitionID) (domain.PetitionSnapshot, error) {
	var document petitionDocument
	if err := c.getJSON(ctx, "/petitions/"+id.String()+".json", nil, &document); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PetitionSnapshot{}, fmt.Errorf("fetch petition %s: %w", id, domain.ErrPetitionNotFound)
		}
		return domain.PetitionSnapshot{}, fmt.Errorf("fetch petition %s: %w", id, err)
	}

	return document.Data.snapshot(c.clock.Now())
}

func (c *Client) ListPage(ctx context.Context, state domain.PetitionState, page int) ([]domain.PetitionID, bool, error) {
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	if state == "" {
		values.Set("state", "all")
	} else {
		values.Set("state", string(state))
	}

	var document listDocument
	if err := c.getJSON(ctx, "/petitions.json", values, &document); err != nil {
		return nil, false, fmt.Errorf("list petitions page %d: %w", page, err)
	}

	ids := make([]domain.PetitionID, 0, len(document.Data))
	for _, entry := range document.Data {
		if entry.ID > 0 {
			ids = append(ids, domain.PetitionID(entry.ID))
		}
	}

	return ids, document.Links.Next != "", nil
}

// getJSON retries transient statuses and transport errors with exponential
// backoff: backoff, 2*backoff, 4*backoff...
func (c *Client) getJSON(ctx context.Context, path string, values url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := c.backoff << (attempt - 1)
			c.logger.Debug("retrying parliament request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}

		retry, err := c.getOnce(ctx, endpoint, out)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("giving up after %d attempts: %w", c.retries+1, lastErr)
}

func (c *Client) getOnce(ctx context.Context, endpoint string, out any) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("wait for rate limiter: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, domain.ErrNotFound
	case retryStatuses[resp.StatusCode]:
		return true, fmt.Errorf("request %s: status %d", endpoint, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return false, fmt.Errorf("request %s: status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", endpoint, err)
	}

	return false, nil
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
