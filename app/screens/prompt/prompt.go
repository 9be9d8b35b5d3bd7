package prompt

import (
	"strings"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// ErrCancelled is returned when the user leaves the prompt with esc or ctrl+c.
var ErrCancelled = errors.New("prompt cancelled")

type model struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newModel(label, placeholder string) model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 48
	ti.Focus()
	return model{label: label, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			// Empty answers keep the prompt open.
			if m.Value() == "" {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		app.SubtitleStyle.Render(m.label),
		m.input.View(),
		app.HelpStyle.Render("enter to confirm • esc to cancel"),
	) + "\n"
}

// Value is the trimmed text typed so far.
func (m model) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Ask shows a one-line text prompt and returns the answer.
func Ask(label, placeholder string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(newModel(label, placeholder), opts...).Run()
	if err != nil {
		return "", errors.Wrap(err, "running prompt")
	}
	m, ok := final.(model)
	if !ok || m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
