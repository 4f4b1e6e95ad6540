package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/pkg/ui/components"
)

// Model is the main Bubble Tea model: a metrics overview for the selected
// project and the metric drawer it opens.
type Model struct {
	// Components
	header  *components.ProjectComponent
	metrics *components.MetricsComponent
	drawer  Drawer
	help    help.Model
	keys    KeyMap

	// State
	projects []domain.Project
	selected int
	quitting bool
	width    int
	height   int
	errorMsg string
}

// New creates a new TUI model over projects.
func New(projects []domain.Project, opts ...DrawerOption) Model {
	m := Model{
		header:   components.NewProjectComponent(),
		metrics:  components.NewMetricsComponent(),
		drawer:   NewDrawer(opts...),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		projects: projects,
	}
	m.refresh()
	return m
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return nil
}

// closeDrawer is the drawer's close callback.
func closeDrawer() tea.Msg {
	return drawerClosedMsg{}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Always allow quit
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.drawer.Visible() {
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case drawerClosedMsg:
		props := m.drawer.Props()
		props.Open = false
		m.drawer, cmd = m.drawer.SetProps(props)
		return m, cmd

	case ErrorMsg:
		m.errorMsg = ""
		if msg.Error != nil {
			m.errorMsg = msg.Error.Error()
		}
	}

	// Activation timers, spinner ticks and errors belong to the drawer.
	m.drawer, cmd = m.drawer.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.metrics.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.metrics.ScrollDown()
	case key.Matches(msg, m.keys.Open):
		return m.openDrawer(domain.MetricKeys()[m.metrics.Cursor()], true)
	case key.Matches(msg, m.keys.Jump):
		i := int(msg.Runes[0] - '1')
		m.metrics.SetCursor(i)
		return m.openDrawer(domain.MetricKeys()[m.metrics.Cursor()], false)
	case key.Matches(msg, m.keys.NextProject):
		m.selectProject(m.selected + 1)
	case key.Matches(msg, m.keys.PrevProject):
		m.selectProject(m.selected - 1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// openDrawer shows metric for the selected project. showBack marks a drawer
// reached by navigating from the overview list.
func (m Model) openDrawer(metric domain.MetricKey, showBack bool) (tea.Model, tea.Cmd) {
	if len(m.projects) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.SetProps(DrawerProps{
		Open:          true,
		OnClose:       closeDrawer,
		Metric:        metric,
		Project:       &m.projects[m.selected],
		ShowBackArrow: showBack,
	})
	return m, cmd
}

func (m *Model) selectProject(i int) {
	if len(m.projects) == 0 {
		return
	}
	m.selected = (i + len(m.projects)) % len(m.projects)
	m.refresh()
}

// refresh rebuilds the header and overview rows from the selected project.
func (m *Model) refresh() {
	if len(m.projects) == 0 {
		m.header.Update(components.ProjectInfo{})
		m.metrics.Update(nil)
		return
	}

	p := m.projects[m.selected]
	info := components.ProjectInfo{
		Name:  p.DisplayName(),
		Index: m.selected,
		Total: len(m.projects),
	}
	if p.HasContract() {
		info.Contract = p.Contract.Hex()
	}
	m.header.Update(info)

	keys := domain.MetricKeys()
	rows := make([]components.MetricRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, components.MetricRow{
			Title:  domain.Heading(k),
			Detail: domain.Details(k, p),
		})
	}
	m.metrics.Update(rows)
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "\n  Goodbye!\n\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render(" Project Tracker "))
	b.WriteString("\n\n")
	b.WriteString(m.header.View())
	b.WriteString("\n\n")

	overviewWidth := 48
	if m.width > 0 {
		overviewWidth = m.width - 4
		if m.drawer.Visible() {
			overviewWidth = m.width - m.drawer.Width() - 4
		}
		if overviewWidth < 24 {
			overviewWidth = 24
		}
	}
	overview := BoxStyle.Width(overviewWidth).Render(m.metrics.View())

	if drawer := m.drawer.View(); drawer != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, overview, drawer))
	} else {
		b.WriteString(overview)
	}
	b.WriteString("\n\n")

	if m.errorMsg != "" && !m.drawer.Visible() {
		b.WriteString(ErrorStyle.Render("  " + m.errorMsg))
		b.WriteString("\n")
	}

	// Help
	if m.drawer.Visible() {
		b.WriteString(HelpStyle.Render(m.help.View(m.drawer.KeyMap())))
	} else {
		b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is done.
func Run(ctx context.Context, projects []domain.Project, opts ...DrawerOption) error {
	p := tea.NewProgram(New(projects, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
