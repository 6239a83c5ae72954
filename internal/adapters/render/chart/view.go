package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

type RenderOptions struct {
	Now    time.Time
	Width  int
	Height int
}

func renderDetail(snapshot application.DetailSnapshot, opts RenderOptions, s styles) string {
	petition := snapshot.Petition
	now := opts.Now
	if now.IsZero() {
		now = snapshot.TakenAt
	}

	lines := []string{
		s.title.Render(petitionTitle(petition)),
		s.header.Render(fmt.Sprintf("#%s · %s · %s signatures", petition.ID, stateLabel(petition, s), humanize.Comma(petition.Signatures))),
	}
	if !petition.PolledAt.IsZero() && !now.IsZero() {
		lines = append(lines, s.header.Render("updated "+humanize.RelTime(petition.PolledAt, now, "ago", "from now")))
	}

	thresholds := make([]string, 0, 2)
	for _, threshold := range petition.Thresholds() {
		thresholds = append(thresholds, thresholdLine(threshold, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, thresholds...)))

	lines = append(lines,
		s.section.Render(s.detail.Render("window: "+windowLabel(snapshot.Window, now))),
		plot(snapshot.Datasets, opts.Width, opts.Height, s),
		s.section.Render(legend(snapshot.Datasets, s)),
		s.empty.Render(fmt.Sprintf("%d/%d locales charted", len(snapshot.Selections), snapshot.MaxDatasets)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func petitionTitle(petition domain.Petition) string {
	if action := strings.TrimSpace(petition.Action); action != "" {
		return action
	}
	return "Petition " + petition.ID.String()
}

func stateLabel(petition domain.Petition, s styles) string {
	label := string(petition.State)
	if label == "" {
		label = "unknown"
	}
	if petition.Archived {
		label += " (archived)"
	}
	if petition.IsOpen() {
		return s.stateOpen.Render(label)
	}
	return s.stateClosed.Render(label)
}

func windowLabel(window domain.TimeWindow, now time.Time) string {
	switch {
	case window.All:
		return "all time"
	case window.Since > 0:
		label := "last " + domain.FormatSpan(window.Since)
		if !now.IsZero() {
			label += " (since " + now.Add(-window.Since).UTC().Format(timeLabelLayout) + ")"
		}
		return label
	case window.IsBetween():
		return window.From.UTC().Format(timeLabelLayout) + " to " + window.To.UTC().Format(timeLabelLayout)
	default:
		return "unset"
	}
}

func thresholdLine(threshold domain.ThresholdProgress, s styles) string {
	label := s.legendKey.Render(fmt.Sprintf("%-8s", threshold.Name))
	bar := renderProgressBar(threshold.Percent, threshold.Reached, 24, s)
	meta := fmt.Sprintf("%3d%% of %s", threshold.Percent, humanize.Comma(threshold.Target))
	if threshold.Reached {
		meta = "reached"
		if !threshold.ReachedAt.IsZero() {
			meta += " " + threshold.ReachedAt.UTC().Format("02 Jan 2006")
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", s.barTextFaint.Render(meta))
}

func renderProgressBar(percent int, reached bool, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := clampInt(int(math.Round(float64(width)*float64(percent)/100)), 0, width)
	fill := s.barFill
	if reached {
		fill = s.barReached
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func legend(datasets []domain.Dataset, s styles) string {
	if len(datasets) == 0 {
		return s.empty.Render("nothing charted")
	}

	lines := make([]string, 0, len(datasets))
	for _, dataset := range datasets {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(dataset.Display.Color)).Render(dataset.Display.Marker)
		key := s.legendKey.Render(dataset.Label)
		if !dataset.Key.IsTotal() {
			key += s.legendMeta.Render(" (" + string(dataset.Geography) + " " + dataset.Locale.Code + ")")
		}

		meta := s.empty.Render("no data")
		if latest, ok := dataset.Latest(); ok {
			meta = s.legendMeta.Render(fmt.Sprintf("%s (+%s)", humanize.Comma(latest.Count), humanize.Comma(dataset.Gain())))
		}

		lines = append(lines, marker+" "+key+"  "+meta)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderList(page domain.PetitionPage, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Petitions")}
	if len(page.Petitions) == 0 {
		lines = append(lines, s.empty.Render("No petitions match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := opts.Width
	if width <= 0 {
		width = 100
	}
	actionWidth := max(width-32, 20)

	for _, petition := range page.Petitions {
		lines = append(lines, fmt.Sprintf("%8s  %-10s %12s  %s",
			petition.ID,
			stateLabel(petition, s),
			humanize.Comma(petition.Signatures),
			s.detail.Render(truncate(petitionTitle(petition), actionWidth)),
		))
	}

	footer := fmt.Sprintf("page %d/%d · %s petitions", page.Index+1, max(page.Pages(), 1), humanize.Comma(int64(page.Total)))
	lines = append(lines, s.section.Render(s.header.Render(footer)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderViews(views []domain.SavedView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Watched petitions"),
		s.header.Render(fmt.Sprintf("views: %d", len(views))),
	}
	if len(views) == 0 {
		lines = append(lines, s.empty.Render("Nothing watched yet. Try: pt watch add ID"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, view := range views {
		locales := make([]string, 0, len(view.Selections))
		for _, selection := range view.Selections {
			locales = append(locales, string(selection.Geography)+":"+selection.Locale.Code)
		}
		detail := "total"
		if len(locales) > 0 {
			detail = strings.Join(locales, ", ")
			if view.ShowTotal {
				detail = "total, " + detail
			}
		}
		window := view.Window
		if window.IsZero() {
			window = domain.DefaultWindow()
		}

		line := fmt.Sprintf("%8s  %s", view.PetitionID, s.detail.Render(truncate(view.DisplayName(), 60)))
		meta := s.legendMeta.Render(fmt.Sprintf("          %s · %s", windowLabel(window, time.Time{}), detail))
		if !view.UpdatedAt.IsZero() && !opts.Now.IsZero() {
			meta += s.empty.Render(" · saved " + humanize.RelTime(view.UpdatedAt, opts.Now, "ago", "from now"))
		}
		lines = append(lines, line, meta)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
