package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

// fetchJob is one tracker request shown behind a spinner on stderr.
type fetchJob struct {
	label string
	run   func(context.Context) error
}

// petitionFetchJob describes loading a chart: which petition, how many
// series and over which window.
func petitionFetchJob(id domain.PetitionID, opts application.LoadOptions, load func(context.Context) error) fetchJob {
	window := opts.Window
	if window.IsZero() {
		window = domain.DefaultWindow()
	}

	series := len(opts.Selections)
	if opts.ShowTotal || series == 0 {
		series++
	}

	return fetchJob{
		label: fmt.Sprintf("Fetching petition %s: %d series, %s", id, series, fetchWindowLabel(window)),
		run:   load,
	}
}

func listFetchJob(query domain.PetitionListQuery, list func(context.Context) error) fetchJob {
	state := "all"
	if query.State != "" {
		state = string(query.State)
	}

	return fetchJob{
		label: fmt.Sprintf("Fetching %s petitions, page %d", state, query.Index+1),
		run:   list,
	}
}

func fetchWindowLabel(window domain.TimeWindow) string {
	switch {
	case window.All:
		return "all time"
	case window.IsBetween():
		return window.From.Format(time.DateOnly) + " to " + window.To.Format(time.DateOnly)
	default:
		return "last " + window.String()
	}
}

type fetchDoneMsg struct {
	err error
}

type fetchSpinnerModel struct {
	spinner spinner.Model
	job     fetchJob
	fetch   tea.Cmd
	started time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newFetchSpinnerModel(job fetchJob, fetch tea.Cmd, now func() time.Time) fetchSpinnerModel {
	if now == nil {
		now = time.Now
	}

	return fetchSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		job:     job,
		fetch:   fetch,
		started: now(),
		now:     now,
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View adds the elapsed time once a fetch takes longer than a second.
func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + m.job.label
	if elapsed := m.now().Sub(m.started); elapsed >= time.Second {
		line += fmt.Sprintf(" (%s)", elapsed.Truncate(time.Second))
	}

	return line
}

func runFetchSpinner(ctx context.Context, output io.Writer, job fetchJob) error {
	fetchCmd := func() tea.Msg {
		return fetchDoneMsg{err: job.run(ctx)}
	}

	p := tea.NewProgram(
		newFetchSpinnerModel(job, fetchCmd, nil),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run fetch spinner: %w", err)
	}

	result, ok := final.(fetchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return result.err
}
