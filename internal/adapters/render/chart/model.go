package chart

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// RenderDetail renders a petition with its chart once, for non-interactive output.
func RenderDetail(snapshot application.DetailSnapshot, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderDetail(snapshot, opts, s)
	})
}

func RenderList(page domain.PetitionPage, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderList(page, opts, s)
	})
}

func RenderViews(views []domain.SavedView, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderViews(views, opts, s)
	})
}

// Detail renders a snapshot without a bubbletea program, for embedding in
// an interactive view.
func Detail(snapshot application.DetailSnapshot, opts RenderOptions) string {
	return renderDetail(snapshot, opts, newStyles())
}

func NotFound(id domain.PetitionID) string {
	s := newStyles()
	return lipgloss.JoinVertical(lipgloss.Left,
		s.warning.Render("Petition "+id.String()+" not found"),
		s.empty.Render("It may have been removed, or it has not been polled yet."),
	)
}
