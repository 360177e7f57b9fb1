package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/calc/internal/calculator"
	"github.com/rail44/calc/internal/config"
	"github.com/rail44/calc/internal/input"
)

// Model is the Bubble Tea model for the calculator. It is also the
// presenter of its machine: every dispatched event stores a projection that
// the next View call draws.
type Model struct {
	machine    *calculator.Machine
	projection calculator.Projection
	styles     Styles
	pressed    string
	status     *LogEntry
	width      int
	height     int
}

// Message types
type themeMsg struct {
	theme config.Theme
}

type logMsg struct {
	entry LogEntry
}

// NewModel creates a model in the calculator's startup state.
func NewModel(theme config.Theme, logger *slog.Logger) *Model {
	m := &Model{
		styles: NewStyles(theme),
	}
	m.machine = calculator.NewMachine(m, logger)
	m.machine.Refresh()
	return m
}

// Present implements calculator.Presenter.
func (m *Model) Present(p calculator.Projection) {
	m.projection = p
}

// State returns the calculator state behind the view.
func (m *Model) State() calculator.State {
	return m.machine.State()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if e, ok := input.FromKey(msg.String()); ok {
			m.dispatch(e)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := hitTest(msg.X, msg.Y); ok {
			m.dispatch(b.Event)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case themeMsg:
		m.styles = NewStyles(msg.theme)

	case logMsg:
		entry := msg.entry
		m.status = &entry
	}

	return m, nil
}

func (m *Model) dispatch(e calculator.Event) {
	m.pressed = ""
	if b, ok := input.ButtonFor(e); ok {
		m.pressed = b.Label
	}
	m.machine.Dispatch(e)
}

// View renders the UI
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("calc"))
	s.WriteString("\n")
	s.WriteString(m.renderPanel())
	s.WriteString("\n")
	s.WriteString(m.renderKeypad())
	s.WriteString("\n\n")

	if m.status != nil {
		s.WriteString(m.styles.Status.MaxWidth(frameWidth).Render(m.status.String()))
		s.WriteString("\n")
	}
	s.WriteString(m.styles.Help.Render("click or type · esc clear · q quit"))

	return s.String()
}

func (m *Model) renderPanel() string {
	inner := frameWidth - 4

	indicator := m.styles.Indicator.Render(truncateLeft(m.projection.Indicator, inner))

	displayStyle := m.styles.Display
	if m.machine.State().Err() != nil {
		displayStyle = m.styles.Error
	}
	display := displayStyle.Render(truncateLeft(m.projection.Display, inner))

	body := lipgloss.JoinVertical(lipgloss.Right,
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, indicator),
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, display),
	)
	return m.styles.Panel.Render(body)
}

func (m *Model) renderKeypad() string {
	rows := make([]string, 0, input.KeypadRows())
	for r := 0; r < input.KeypadRows(); r++ {
		var cells []string
		for i, b := range input.Row(r) {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			style, ok := m.styles.Buttons[b.Class]
			if !ok || b.Label == m.pressed {
				style = m.styles.Pressed
			}
			cells = append(cells, style.Width(buttonWidth(b)).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// truncateLeft keeps the last width runes of s, marking the cut with "…".
func truncateLeft(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 1 {
		return s
	}
	runes := []rune(s)
	return "…" + string(runes[len(runes)-(width-1):])
}
