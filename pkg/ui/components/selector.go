package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SelectorComponent renders a labeled single-choice option row.
type SelectorComponent struct {
	Label    string
	Options  []string
	Selected string

	labelStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	optionStyle   lipgloss.Style
}

// NewSelectorComponent creates a selector with the given options.
func NewSelectorComponent(label string, options []string, accent lipgloss.Color) SelectorComponent {
	return SelectorComponent{
		Label:         label,
		Options:       options,
		labelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		selectedStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		optionStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// View renders the options with the selected one bracketed.
func (s SelectorComponent) View() string {
	var sb strings.Builder
	sb.WriteString(s.labelStyle.Render(s.Label + ":"))
	for _, opt := range s.Options {
		sb.WriteString(" ")
		if opt == s.Selected {
			sb.WriteString(s.selectedStyle.Render("[" + opt + "]"))
		} else {
			sb.WriteString(s.optionStyle.Render(" " + opt + " "))
		}
	}
	return sb.String()
}
