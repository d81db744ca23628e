package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Submit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "x"),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// checklistModel is the bubbletea model behind Checklist.
type checklistModel struct {
	title   string
	choices []string
	cursor  int
	checked map[int]bool
	help    help.Model

	submitted bool
	cancelled bool
}

func newChecklistModel(title string, choices []string) checklistModel {
	return checklistModel{
		title:   title,
		choices: choices,
		checked: make(map[int]bool),
		help:    help.New(),
	}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Submit):
		m.submitted = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else if len(m.choices) > 0 {
			m.cursor = len(m.choices) - 1
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case key.Matches(keyMsg, keys.Toggle):
		if len(m.choices) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}

	case key.Matches(keyMsg, keys.All):
		// Select everything unless everything is already selected.
		all := len(m.selected()) == len(m.choices)
		for i := range m.choices {
			m.checked[i] = !all
		}
	}

	return m, nil
}

func (m checklistModel) View() string {
	if m.submitted {
		// Leave a one-line summary in the scrollback.
		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), selectedStyle.Render(strings.Join(m.selected(), ", ")))
	}
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("? "+m.title) + "\n")

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}

		box := dimStyle.Render("◯")
		if m.checked[i] {
			box = checkedStyle.Render("◉")
		}

		fmt.Fprintf(&b, "%s %s %s\n", cursor, box, choice)
	}

	b.WriteString("\n" + m.help.View(keys) + "\n")
	return b.String()
}

func (m checklistModel) selected() []string {
	return pick(m.choices, m.checked)
}

// Checklist renders the choices as a checkbox list in the terminal.
type Checklist struct {
	In  io.Reader
	Out io.Writer
}

// MultiSelect runs the checklist until the operator submits or cancels.
// Cancelling, or ctx being done, yields ErrCancelled.
func (c Checklist) MultiSelect(ctx context.Context, title string, choices []string) ([]string, error) {
	var opts []tea.ProgramOption
	opts = append(opts, tea.WithContext(ctx))
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}

	final, err := tea.NewProgram(newChecklistModel(title, choices), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("checklist failed: %w", err)
	}

	m, ok := final.(checklistModel)
	if !ok || !m.submitted {
		return nil, ErrCancelled
	}
	return m.selected(), nil
}
