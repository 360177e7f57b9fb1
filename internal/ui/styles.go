package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/calc/internal/config"
	"github.com/rail44/calc/internal/input"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Panel     lipgloss.Style
	Indicator lipgloss.Style
	Display   lipgloss.Style
	Error     lipgloss.Style
	Buttons   map[input.ButtonClass]lipgloss.Style
	Pressed   lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme config.Theme) Styles {
	button := lipgloss.NewStyle().
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color("15"))

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Operator)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1).
			Width(frameWidth - 2),
		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Indicator)),
		Display: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Display)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Error)),
		Buttons: map[input.ButtonClass]lipgloss.Style{
			input.ClassDigit:    button.Background(lipgloss.Color(theme.Digit)),
			input.ClassOperator: button.Background(lipgloss.Color(theme.Operator)),
			input.ClassFunction: button.Background(lipgloss.Color(theme.Function)),
		},
		Pressed: button.
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(theme.Highlight)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
	}
}
