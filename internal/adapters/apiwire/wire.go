// Package apiwire holds the JSON shapes of the tracker API shared by the
// client and the server.
package apiwire

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/petition-tracker/internal/domain"
)

// TimestampLayout formats signature row timestamps (UTC, second precision).
const TimestampLayout = "02-01-2006T15:04:05"

type Petition struct {
	ID                         int64  `json:"id"`
	Action                     string `json:"action"`
	Background                 string `json:"background,omitempty"`
	AdditionalDetails          string `json:"additional_details,omitempty"`
	URL                        string `json:"url,omitempty"`
	State                      string `json:"state"`
	Archived                   bool   `json:"archived"`
	Signatures                 int64  `json:"signatures"`
	CreatedAt                  string `json:"pt_created_at,omitempty"`
	UpdatedAt                  string `json:"pt_updated_at,omitempty"`
	ClosedAt                   string `json:"pt_closed_at,omitempty"`
	RejectedAt                 string `json:"pt_rejected_at,omitempty"`
	ResponseThresholdReachedAt string `json:"response_threshold_reached_at,omitempty"`
	DebateThresholdReachedAt   string `json:"debate_threshold_reached_at,omitempty"`
	PolledAt                   string `json:"polled_at,omitempty"`
}

type LocaleCount struct {
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Count int64  `json:"count"`
}

// SignatureRow is one record. Locale rows carry exactly one of the
// signatures_by_<geography> objects; nested rows carry the lists.
type SignatureRow struct {
	Timestamp string `json:"timestamp"`
	Total     int64  `json:"total"`

	ByCountry      *LocaleCount `json:"signatures_by_country,omitempty"`
	ByRegion       *LocaleCount `json:"signatures_by_region,omitempty"`
	ByConstituency *LocaleCount `json:"signatures_by_constituency,omitempty"`
}

type NestedRow struct {
	Timestamp      string        `json:"timestamp"`
	Total          int64         `json:"total"`
	ByCountry      []LocaleCount `json:"signatures_by_country,omitempty"`
	ByRegion       []LocaleCount `json:"signatures_by_region,omitempty"`
	ByConstituency []LocaleCount `json:"signatures_by_constituency,omitempty"`
}

type Items struct {
	Total   int `json:"total"`
	OnPage  int `json:"on_page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

type Meta struct {
	Query map[string]any    `json:"query,omitempty"`
	Items Items             `json:"items"`
	Pages int               `json:"pages,omitempty"`
	Index int               `json:"index,omitempty"`
	Links map[string]string `json:"links,omitempty"`
}

type PetitionsResponse struct {
	State     string     `json:"state"`
	Petitions []Petition `json:"petitions"`
	Meta      Meta       `json:"meta"`
}

type PetitionResponse struct {
	Petition   Petition   `json:"petition"`
	Signatures *NestedRow `json:"signatures,omitempty"`
}

type SignaturesResponse struct {
	Petition   Petition       `json:"petition"`
	Signatures []SignatureRow `json:"signatures"`
	Meta       Meta           `json:"meta"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// Since is the JSON value of the since query parameter, e.g. {"hours":12}.
type Since struct {
	Weeks   int64 `json:"weeks,omitempty"`
	Days    int64 `json:"days,omitempty"`
	Hours   int64 `json:"hours,omitempty"`
	Minutes int64 `json:"minutes,omitempty"`
}

func (s Since) Duration() time.Duration {
	return time.Duration(s.Weeks)*domain.Week +
		time.Duration(s.Days)*domain.Day +
		time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute
}

func SinceFor(d time.Duration) Since {
	switch {
	case d%domain.Week == 0:
		return Since{Weeks: int64(d / domain.Week)}
	case d%domain.Day == 0:
		return Since{Days: int64(d / domain.Day)}
	case d%time.Hour == 0:
		return Since{Hours: int64(d / time.Hour)}
	default:
		return Since{Minutes: int64(d / time.Minute)}
	}
}

// Between is the JSON value of the between query parameter: signatures taken
// after gt and before lt.
type Between struct {
	GT string `json:"gt"`
	LT string `json:"lt"`
}

// WindowQuery encodes a window as since/between query parameters. The all
// window adds nothing.
func WindowQuery(window domain.TimeWindow) (url.Values, error) {
	values := url.Values{}
	switch {
	case window.All:
		return values, nil
	case window.Since > 0:
		encoded, err := json.Marshal(SinceFor(window.Since))
		if err != nil {
			return nil, fmt.Errorf("encode since: %w", err)
		}
		values.Set("since", string(encoded))
	case window.IsBetween():
		encoded, err := json.Marshal(Between{GT: FormatTime(window.From), LT: FormatTime(window.To)})
		if err != nil {
			return nil, fmt.Errorf("encode between: %w", err)
		}
		values.Set("between", string(encoded))
	default:
		return nil, fmt.Errorf("%w: nothing to encode", domain.ErrInvalidWindow)
	}

	return values, nil
}

// ParseWindowQuery is the inverse of WindowQuery. Neither parameter means all.
func ParseWindowQuery(values url.Values) (domain.TimeWindow, error) {
	rawSince := strings.TrimSpace(values.Get("since"))
	rawBetween := strings.TrimSpace(values.Get("between"))

	switch {
	case rawSince != "" && rawBetween != "":
		return domain.TimeWindow{}, fmt.Errorf("%w: since and between are mutually exclusive", domain.ErrInvalidWindow)
	case rawSince != "":
		var since Since
		if err := json.Unmarshal([]byte(rawSince), &since); err != nil {
			return domain.TimeWindow{}, fmt.Errorf("%w: since: %v", domain.ErrInvalidWindow, err)
		}
		if since.Duration() <= 0 {
			return domain.TimeWindow{}, fmt.Errorf("%w: since must be positive", domain.ErrInvalidWindow)
		}
		return domain.SinceWindow(since.Duration()), nil
	case rawBetween != "":
		var between Between
		if err := json.Unmarshal([]byte(rawBetween), &between); err != nil {
			return domain.TimeWindow{}, fmt.Errorf("%w: between: %v", domain.ErrInvalidWindow, err)
		}
		return domain.ParseBetween(between.GT, between.LT)
	default:
		return domain.AllTime(), nil
	}
}

func FormatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}

func ParseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", raw, err)
	}

	return parsed.UTC(), nil
}

func FormatTimestamp(value time.Time) string {
	return value.UTC().Format(TimestampLayout)
}

func ParseTimestamp(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(TimestampLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}

	return parsed, nil
}
