package detail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/petition-tracker/internal/adapters/render/chart"
	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

const defaultOperationTimeout = 30 * time.Second

// View is the detail view state machine the interactive loop drives.
type View interface {
	Load(ctx context.Context, id domain.PetitionID, opts application.LoadOptions) error
	AddLocale(ctx context.Context, geo domain.Geography, locale domain.Locale) error
	RemoveLocale(ctx context.Context, geo domain.Geography, code string) error
	ToggleTotal(ctx context.Context) error
	SetWindow(ctx context.Context, window domain.TimeWindow) error
	Refresh(ctx context.Context) error
	Snapshot() application.DetailSnapshot
	SavedView() (domain.SavedView, error)
}

type ViewSaver interface {
	SaveView(ctx context.Context, view domain.SavedView) (domain.SavedView, error)
}

type Options struct {
	PetitionID domain.PetitionID
	Load       application.LoadOptions
	Saver      ViewSaver
	Timeout    time.Duration
	Now        func() time.Time
}

type operationDoneMsg struct {
	seq      int
	label    string
	err      error
	snapshot application.DetailSnapshot
}

type viewSavedMsg struct {
	view domain.SavedView
	err  error
}

// Model runs one operation at a time. Commands typed while an operation is
// in flight wait in queue and start in the order they were entered.
type Model struct {
	ctx     context.Context
	view    View
	opts    Options
	input   textinput.Model
	spinner spinner.Model

	snapshot application.DetailSnapshot
	queue    []command
	busy     bool
	seq      int
	applied  int
	loaded   bool
	notFound bool
	pending  int
	banner   string
	status   string
	showHelp bool
	width    int
	height   int
	quitting bool
}

func New(ctx context.Context, view View, opts Options) Model {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultOperationTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "add country GB, since 2w, help"
	input.CharLimit = 120
	input.Focus()

	return Model{
		ctx:  ctx,
		view: view,
		opts: opts,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		input:   input,
		busy:    true,
		seq:     1,
		pending: 1,
	}
}

func (m Model) Init() tea.Cmd {
	id := m.opts.PetitionID
	load := m.opts.Load
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.operation(m.seq, fmt.Sprintf("loading petition %s", id), func(ctx context.Context) error {
			return m.view.Load(ctx, id, load)
		}),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			return m.run(line)
		}
	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case operationDoneMsg:
		m.finish()
		if msg.seq >= m.applied {
			m.snapshot = msg.snapshot
			m.applied = msg.seq
		}
		if msg.err != nil {
			if !m.loaded && application.IsNotFound(msg.err) {
				m.notFound = true
				m.queue = nil
				m.pending = 0
				return m, nil
			}
			m.banner = fmt.Sprintf("%s: %v", msg.label, msg.err)
			return m.next()
		}
		m.loaded = true
		m.banner = ""
		return m.next()
	case viewSavedMsg:
		m.finish()
		if msg.err != nil {
			m.banner = fmt.Sprintf("save view: %v", msg.err)
			return m.next()
		}
		m.banner = ""
		m.status = "saved view for petition " + msg.view.PetitionID.String()
		return m.next()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) run(line string) (tea.Model, tea.Cmd) {
	cmd, err := parseCommand(line)
	if errors.Is(err, errEmptyCommand) {
		return m, nil
	}
	m.status = ""
	m.showHelp = false
	if err != nil {
		m.banner = err.Error()
		return m, nil
	}

	switch cmd.kind {
	case commandQuit:
		m.quitting = true
		return m, tea.Quit
	case commandHelp:
		m.showHelp = true
		return m, nil
	}

	if m.notFound || (!m.loaded && !m.busy) {
		m.banner = domain.ErrNoPetitionLoaded.Error()
		return m, nil
	}

	m.pending++
	if m.busy {
		m.queue = append(m.queue, cmd)
		return m, nil
	}

	next, op := m.start(cmd)
	return next, tea.Batch(op, m.spinner.Tick)
}

// start launches cmd; the caller has already counted it in pending.
func (m Model) start(cmd command) (tea.Model, tea.Cmd) {
	m.busy = true
	m.seq++
	seq := m.seq

	var op tea.Cmd
	switch cmd.kind {
	case commandAdd:
		op = m.operation(seq, "add "+cmd.locale.Code, func(ctx context.Context) error {
			return m.view.AddLocale(ctx, cmd.geography, cmd.locale)
		})
	case commandRemove:
		op = m.operation(seq, "remove "+cmd.locale.Code, func(ctx context.Context) error {
			return m.view.RemoveLocale(ctx, cmd.geography, cmd.locale.Code)
		})
	case commandTotal:
		op = m.operation(seq, "toggle total", m.view.ToggleTotal)
	case commandWindow:
		op = m.operation(seq, "set window "+cmd.window.String(), func(ctx context.Context) error {
			return m.view.SetWindow(ctx, cmd.window)
		})
	case commandRefresh:
		op = m.operation(seq, "refresh", m.view.Refresh)
	case commandSave:
		op = m.save()
	}

	return m, op
}

func (m *Model) finish() {
	m.busy = false
	m.pending = max(m.pending-1, 0)
}

// next starts the oldest queued command, if any.
func (m Model) next() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		return m, nil
	}

	cmd := m.queue[0]
	m.queue = m.queue[1:]
	return m.start(cmd)
}

func (m Model) operation(seq int, label string, fn func(context.Context) error) tea.Cmd {
	parent := m.ctx
	view := m.view
	timeout := m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		err := fn(ctx)
		return operationDoneMsg{seq: seq, label: label, err: err, snapshot: view.Snapshot()}
	}
}

func (m Model) save() tea.Cmd {
	parent := m.ctx
	view := m.view
	saver := m.opts.Saver
	timeout := m.opts.Timeout
	return func() tea.Msg {
		if saver == nil {
			return viewSavedMsg{err: errors.New("saving is not configured")}
		}
		current, err := view.SavedView()
		if err != nil {
			return viewSavedMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		saved, err := saver.SaveView(ctx, current)
		return viewSavedMsg{view: saved, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.notFound {
		return lipgloss.JoinVertical(lipgloss.Left, chart.NotFound(m.opts.PetitionID), "", m.input.View())
	}

	sections := make([]string, 0, 5)
	if m.loaded {
		sections = append(sections, chart.Detail(m.snapshot, chart.RenderOptions{
			Now:    m.opts.Now(),
			Width:  m.plotWidth(),
			Height: m.plotHeight(),
		}))
	}
	if m.showHelp {
		sections = append(sections, "", helpText)
	}
	if m.banner != "" {
		sections = append(sections, "", chart.Warning(m.banner))
	}
	if m.status != "" {
		sections = append(sections, "", m.status)
	}
	prompt := m.input.View()
	if m.pending > 0 {
		prompt = m.spinner.View() + " " + prompt
	}
	sections = append(sections, "", prompt)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// plotWidth leaves room for the axis labels.
func (m Model) plotWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-10, 20)
}

// plotHeight leaves room for the header, thresholds, legend and prompt.
func (m Model) plotHeight() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 14 + len(m.snapshot.Datasets)
	return max(m.height-reserved, 6)
}

// Run drives the interactive view until the user quits or ctx ends.
func Run(ctx context.Context, view View, opts Options, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		New(ctx, view, opts),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
