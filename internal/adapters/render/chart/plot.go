package chart

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/petition-tracker/internal/domain"
)

const (
	defaultPlotWidth  = 60
	defaultPlotHeight = 12
	timeLabelLayout   = "02 Jan 15:04"
)

type cell struct {
	marker string
	color  string
}

type plotBounds struct {
	from, to time.Time
	min, max int64
}

func boundsOf(datasets []domain.Dataset) (plotBounds, bool) {
	var bounds plotBounds
	found := false
	for _, dataset := range datasets {
		for _, sample := range dataset.Samples {
			if !found {
				bounds = plotBounds{from: sample.Timestamp, to: sample.Timestamp, min: sample.Count, max: sample.Count}
				found = true
				continue
			}
			if sample.Timestamp.Before(bounds.from) {
				bounds.from = sample.Timestamp
			}
			if sample.Timestamp.After(bounds.to) {
				bounds.to = sample.Timestamp
			}
			bounds.min = min(bounds.min, sample.Count)
			bounds.max = max(bounds.max, sample.Count)
		}
	}

	return bounds, found
}

// column maps an instant onto [0, width). A single instant lands on the right edge.
func (b plotBounds) column(t time.Time, width int) int {
	span := b.to.Sub(b.from)
	if span <= 0 {
		return width - 1
	}

	return clampInt(int(math.Round(float64(t.Sub(b.from))/float64(span)*float64(width-1))), 0, width-1)
}

// row maps a count onto [0, height), row 0 being the top.
func (b plotBounds) row(count int64, height int) int {
	span := b.max - b.min
	if span <= 0 {
		return height / 2
	}

	level := int(math.Round(float64(count-b.min) / float64(span) * float64(height-1)))
	return height - 1 - clampInt(level, 0, height-1)
}

// plot draws every dataset onto a marker grid. Later datasets draw over
// earlier ones where they collide.
func plot(datasets []domain.Dataset, width, height int, s styles) string {
	if width <= 0 {
		width = defaultPlotWidth
	}
	if height <= 0 {
		height = defaultPlotHeight
	}

	bounds, ok := boundsOf(datasets)
	if !ok {
		return s.empty.Render("No signatures recorded in this window.")
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	for _, dataset := range datasets {
		marker := dataset.Display.Marker
		if marker == "" {
			marker = "•"
		}
		for _, sample := range dataset.Samples {
			grid[bounds.row(sample.Count, height)][bounds.column(sample.Timestamp, width)] = cell{marker: marker, color: dataset.Display.Color}
		}
	}

	labels := map[int]string{
		0:          domain.CompactCount(bounds.max),
		height / 2: domain.CompactCount(bounds.min + (bounds.max-bounds.min)/2),
		height - 1: domain.CompactCount(bounds.min),
	}
	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, len(label))
	}

	lines := make([]string, 0, height+2)
	for r, row := range grid {
		var b strings.Builder
		b.WriteString(s.axisLabel.Render(padLeft(labels[r], labelWidth)))
		b.WriteString(s.axis.Render(" ┤"))
		for _, c := range row {
			if c.marker == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(c.marker))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, s.axis.Render(strings.Repeat(" ", labelWidth)+" └"+strings.Repeat("─", width)))
	from := bounds.from.UTC().Format(timeLabelLayout)
	to := bounds.to.UTC().Format(timeLabelLayout)
	gap := max(width-len(from)-len(to), 1)
	lines = append(lines, s.axisLabel.Render(strings.Repeat(" ", labelWidth+2)+from+strings.Repeat(" ", gap)+to))

	return strings.Join(lines, "\n")
}

func padLeft(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return strings.Repeat(" ", width-len(value)) + value
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
