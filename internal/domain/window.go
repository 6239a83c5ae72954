package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// TimeWindow selects the samples to chart: everything, the span before now,
// or a fixed range.
type TimeWindow struct {
	All   bool
	Since time.Duration
	From  time.Time
	To    time.Time
}

func AllTime() TimeWindow {
	return TimeWindow{All: true}
}

func SinceWindow(d time.Duration) TimeWindow {
	return TimeWindow{Since: d}
}

// BetweenWindow orders the bounds so From is never after To.
func BetweenWindow(from, to time.Time) TimeWindow {
	if to.Before(from) {
		from, to = to, from
	}

	return TimeWindow{From: from.UTC(), To: to.UTC()}
}

// DayRangeWindow spans whole calendar days: the range opens 23 hours before
// the first day and closes 59 minutes after the last, so a single day still
// covers 24 hours of samples.
func DayRangeWindow(firstDay, lastDay time.Time) TimeWindow {
	if lastDay.Before(firstDay) {
		firstDay, lastDay = lastDay, firstDay
	}

	return BetweenWindow(firstDay.Add(-23*time.Hour), lastDay.Add(59*time.Minute))
}

func (w TimeWindow) IsBetween() bool {
	return !w.All && w.Since <= 0 && !w.From.IsZero()
}

func (w TimeWindow) IsZero() bool {
	return !w.All && w.Since <= 0 && w.From.IsZero() && w.To.IsZero()
}

func (w TimeWindow) Validate() error {
	switch {
	case w.All:
		return nil
	case w.Since > 0:
		return nil
	case !w.From.IsZero() && !w.To.IsZero():
		if w.To.Before(w.From) {
			return fmt.Errorf("%w: range ends before it starts", ErrInvalidWindow)
		}
		return nil
	default:
		return fmt.Errorf("%w: set a duration, a range, or all", ErrInvalidWindow)
	}
}

// Bounds resolves the window against now. The zero From means unbounded.
func (w TimeWindow) Bounds(now time.Time) (time.Time, time.Time) {
	switch {
	case w.All:
		return time.Time{}, now
	case w.Since > 0:
		return now.Add(-w.Since), now
	default:
		return w.From, w.To
	}
}

func (w TimeWindow) Contains(now, t time.Time) bool {
	from, to := w.Bounds(now)
	if !from.IsZero() && t.Before(from) {
		return false
	}

	return to.IsZero() || !t.After(to)
}

func (w TimeWindow) String() string {
	switch {
	case w.All:
		return "all"
	case w.Since > 0:
		return FormatSpan(w.Since)
	case w.IsBetween():
		return w.From.Format(time.RFC3339) + ".." + w.To.Format(time.RFC3339)
	default:
		return ""
	}
}

// ParseWindow accepts "all", a span such as "12h", "7d" or "2w", or a range
// "FROM..TO" / "FROM,TO" of RFC 3339 instants or YYYY-MM-DD days.
func ParseWindow(raw string) (TimeWindow, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "all") {
		return AllTime(), nil
	}

	for _, sep := range []string{"..", ","} {
		if from, to, ok := strings.Cut(trimmed, sep); ok {
			return ParseBetween(from, to)
		}
	}

	span, err := ParseSpan(trimmed)
	if err != nil {
		return TimeWindow{}, err
	}

	return SinceWindow(span), nil
}

func ParseBetween(rawFrom, rawTo string) (TimeWindow, error) {
	from, fromIsDay, err := parseInstant(rawFrom)
	if err != nil {
		return TimeWindow{}, err
	}
	to, toIsDay, err := parseInstant(rawTo)
	if err != nil {
		return TimeWindow{}, err
	}

	if fromIsDay && toIsDay {
		return DayRangeWindow(from, to), nil
	}

	return BetweenWindow(from, to), nil
}

func parseInstant(raw string) (time.Time, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed.UTC(), false, nil
	}
	if parsed, err := time.Parse(time.DateOnly, trimmed); err == nil {
		return parsed.UTC(), true, nil
	}

	return time.Time{}, false, fmt.Errorf("%w: %q is neither RFC 3339 nor YYYY-MM-DD", ErrInvalidWindow, raw)
}

// ParseSpan parses "90m", "12h", "7d", "2w" and any time.ParseDuration input.
func ParseSpan(raw string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty span", ErrInvalidWindow)
	}

	unit := trimmed[len(trimmed)-1]
	if unit == 'd' || unit == 'w' {
		value, err := strconv.Atoi(trimmed[:len(trimmed)-1])
		if err != nil || value <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, raw)
		}
		if unit == 'd' {
			return time.Duration(value) * Day, nil
		}
		return time.Duration(value) * Week, nil
	}

	span, err := time.ParseDuration(trimmed)
	if err != nil || span <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, raw)
	}

	return span, nil
}

// FormatSpan renders a span in the largest whole unit that divides it.
func FormatSpan(d time.Duration) string {
	switch {
	case d <= 0:
		return "0h"
	case d%Week == 0:
		return fmt.Sprintf("%dw", d/Week)
	case d%Day == 0:
		return fmt.Sprintf("%dd", d/Day)
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	default:
		return fmt.Sprintf("%dm", d/time.Minute)
	}
}

// DefaultWindow is applied when a view is opened without an explicit window.
func DefaultWindow() TimeWindow {
	return SinceWindow(Week)
}
