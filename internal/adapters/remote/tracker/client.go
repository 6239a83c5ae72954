// Package tracker is the HTTP client of the petition tracker API.
package tracker

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

	"github.com/bnema/petition-tracker/internal/adapters/apiwire"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

const maxResponseBytes = 8 << 20

// StatusError is a non-2xx answer from the API. A 404 unwraps to
// domain.ErrNotFound, or domain.ErrPetitionNotFound for petition lookups.
type StatusError struct {
	StatusCode int
	Message    string
	notFound   error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.notFound
}

type Client struct {
	BaseURL        string
	Token          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Clock          ports.Clock
	Logger         *zap.Logger
}

var _ ports.PetitionAPI = (*Client)(nil)

func (c *Client) GetPetition(ctx context.Context, id domain.PetitionID) (domain.Petition, error) {
	var payload apiwire.PetitionResponse
	if err := c.getJSON(ctx, "petition/"+id.String(), nil, domain.ErrPetitionNotFound, &payload); err != nil {
		return domain.Petition{}, err
	}

	petition, err := payload.Petition.ToDomain()
	if err != nil {
		return domain.Petition{}, err
	}
	if petition.ID == 0 {
		return domain.Petition{}, errors.New("petition response missing id")
	}

	return petition, nil
}

func (c *Client) ListPetitions(ctx context.Context, query domain.PetitionListQuery) (domain.PetitionPage, error) {
	query = query.Normalize()
	values := url.Values{}
	if query.State != "" {
		values.Set("state", string(query.State))
	}
	values.Set("index", strconv.Itoa(query.Index))
	values.Set("items", strconv.Itoa(query.Items))

	var payload apiwire.PetitionsResponse
	if err := c.getJSON(ctx, "petitions", values, domain.ErrNotFound, &payload); err != nil {
		return domain.PetitionPage{}, err
	}

	page := domain.PetitionPage{
		Petitions: make([]domain.Petition, 0, len(payload.Petitions)),
		Index:     query.Index,
		PerPage:   query.Items,
		Total:     payload.Meta.Items.Total,
	}
	for _, raw := range payload.Petitions {
		petition, err := raw.ToDomain()
		if err != nil {
			return domain.PetitionPage{}, err
		}
		page.Petitions = append(page.Petitions, petition)
	}

	return page, nil
}

func (c *Client) FetchTotal(ctx context.Context, id domain.PetitionID, window domain.TimeWindow) (domain.Dataset, error) {
	values, err := apiwire.WindowQuery(window)
	if err != nil {
		return domain.Dataset{}, err
	}

	var payload apiwire.SignaturesResponse
	if err := c.getJSON(ctx, "petition/"+id.String()+"/signatures", values, domain.ErrNotFound, &payload); err != nil {
		return domain.Dataset{}, err
	}

	samples, err := apiwire.TotalSamples(payload.Signatures)
	if err != nil {
		return domain.Dataset{}, err
	}

	return domain.NewTotalDataset(samples, c.now()), nil
}

func (c *Client) FetchLocale(ctx context.Context, id domain.PetitionID, geo domain.Geography, locale domain.Locale, window domain.TimeWindow, opts ports.FetchOptions) (domain.Dataset, error) {
	if !geo.Valid() {
		return domain.Dataset{}, fmt.Errorf("%w: %q", domain.ErrUnknownGeography, geo)
	}
	locale.Code = domain.NormalizeLocaleCode(locale.Code)

	values, err := apiwire.WindowQuery(window)
	if err != nil {
		return domain.Dataset{}, err
	}

	path := "petition/" + id.String() + "/signatures_by/" + string(geo) + "/" + url.PathEscape(locale.Code)
	var payload apiwire.SignaturesResponse
	if err := c.getJSON(ctx, path, values, domain.ErrNotFound, &payload); err != nil {
		if opts.EmptyOnNotFound && errors.Is(err, domain.ErrNotFound) {
			c.logger().Debug("no signatures for locale",
				zap.Int64("petition_id", int64(id)),
				zap.String("geography", string(geo)),
				zap.String("locale", locale.Code),
			)
			return domain.NewPlaceholderDataset(geo, locale, c.now()), nil
		}
		return domain.Dataset{}, err
	}

	samples, name, err := apiwire.LocaleSamples(geo, payload.Signatures)
	if err != nil {
		return domain.Dataset{}, err
	}
	if locale.Name == "" {
		locale.Name = name
	}

	return domain.NewLocaleDataset(geo, locale, samples, c.now()), nil
}

func (c *Client) getJSON(ctx context.Context, path string, values url.Values, notFound error, out any) error {
	endpoint, err := buildURL(c.BaseURL, path, values)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().Debug("tracker api request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request %s: %w", path, decodeStatusError(resp, notFound))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func decodeStatusError(resp *http.Response, notFound error) *StatusError {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusNotFound {
		statusErr.notFound = notFound
	}

	var payload apiwire.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err == nil {
		statusErr.Message = payload.Message
	}

	return statusErr
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) now() time.Time {
	if c.Clock == nil {
		return ports.SystemClock{}.Now()
	}
	return c.Clock.Now()
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func buildURL(baseURL string, path string, values url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	if len(values) > 0 {
		endpoint.RawQuery = values.Encode()
	}

	return endpoint.String(), nil
}
