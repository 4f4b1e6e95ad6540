// Package components provides reusable TUI components.
package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingComponent renders an indeterminate progress spinner with a message.
type LoadingComponent struct {
	spinner spinner.Model
	message string
	style   lipgloss.Style
}

// NewLoadingComponent creates a loading indicator.
func NewLoadingComponent(color lipgloss.Color) LoadingComponent {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(color)
	return LoadingComponent{
		spinner: s,
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// SetMessage sets the text shown next to the spinner.
func (l LoadingComponent) SetMessage(message string) LoadingComponent {
	l.message = message
	return l
}

// Message returns the current message.
func (l LoadingComponent) Message() string {
	return l.message
}

// Tick starts the spinner animation.
func (l LoadingComponent) Tick() tea.Msg {
	return l.spinner.Tick()
}

// Update advances the spinner on its tick messages.
func (l LoadingComponent) Update(msg tea.Msg) (LoadingComponent, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the loading indicator.
func (l LoadingComponent) View() string {
	return l.spinner.View() + " " + l.style.Render(l.message)
}
