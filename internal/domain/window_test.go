package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    TimeWindow
		wantErr bool
	}{
		{name: "all", raw: "ALL", want: AllTime()},
		{name: "hours", raw: "12h", want: SinceWindow(12 * time.Hour)},
		{name: "days", raw: "7d", want: SinceWindow(7 * Day)},
		{name: "weeks", raw: "2w", want: SinceWindow(2 * Week)},
		{name: "minutes", raw: "90m", want: SinceWindow(90 * time.Minute)},
		{
			name: "rfc3339 range",
			raw:  "2024-01-02T00:00:00Z..2024-01-01T00:00:00Z",
			want: TimeWindow{
				From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "day range spans whole days",
			raw:  "2024-01-01,2024-01-01",
			want: TimeWindow{
				From: time.Date(2023, 12, 31, 1, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 1, 1, 0, 59, 0, 0, time.UTC),
			},
		},
		{name: "zero span", raw: "0d", wantErr: true},
		{name: "garbage", raw: "soon", wantErr: true},
		{name: "bad range", raw: "yesterday..today", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWindow(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeWindowBoundsAndContains(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	window := SinceWindow(24 * time.Hour)

	from, to := window.Bounds(now)
	assert.Equal(t, now.Add(-24*time.Hour), from)
	assert.Equal(t, now, to)
	assert.True(t, window.Contains(now, now.Add(-time.Hour)))
	assert.False(t, window.Contains(now, now.Add(-25*time.Hour)))

	all := AllTime()
	assert.True(t, all.Contains(now, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2w", FormatSpan(2*Week))
	assert.Equal(t, "3d", FormatSpan(3*Day))
	assert.Equal(t, "12h", FormatSpan(12*time.Hour))
	assert.Equal(t, "90m", FormatSpan(90*time.Minute))
	assert.Equal(t, "7d", SinceWindow(7*Day).String())
}

func TestTimeWindowValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AllTime().Validate())
	assert.NoError(t, SinceWindow(time.Hour).Validate())
	assert.ErrorIs(t, TimeWindow{}.Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, TimeWindow{
		From: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}.Validate(), ErrInvalidWindow)
}
