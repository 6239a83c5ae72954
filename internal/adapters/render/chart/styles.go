package chart

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	detail       lipgloss.Style
	warning      lipgloss.Style
	section      lipgloss.Style
	empty        lipgloss.Style
	axis         lipgloss.Style
	axisLabel    lipgloss.Style
	legendKey    lipgloss.Style
	legendMeta   lipgloss.Style
	stateOpen    lipgloss.Style
	stateClosed  lipgloss.Style
	barBracket   lipgloss.Style
	barFill      lipgloss.Style
	barReached   lipgloss.Style
	barEmpty     lipgloss.Style
	barTextFaint lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:      lipgloss.NewStyle().MarginTop(1),
		empty:        lipgloss.NewStyle().Faint(true),
		axis:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		axisLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		legendKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		legendMeta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stateOpen:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		stateClosed:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:      lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barReached:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		barEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barTextFaint: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Warning renders an error banner in the warning style.
func Warning(message string) string {
	return newStyles().warning.Render(message)
}
