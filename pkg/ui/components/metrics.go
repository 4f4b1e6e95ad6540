package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MetricRow is one entry in the metrics overview.
type MetricRow struct {
	Title  string
	Detail string
}

// MetricsComponent renders the selectable list of a project's metrics.
type MetricsComponent struct {
	rows   []MetricRow
	cursor int
}

// NewMetricsComponent creates an empty metrics list.
func NewMetricsComponent() *MetricsComponent {
	return &MetricsComponent{}
}

// Update replaces the rows, keeping the cursor in range.
func (m *MetricsComponent) Update(rows []MetricRow) {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = 0
	}
}

// Cursor returns the selected row index.
func (m *MetricsComponent) Cursor() int {
	return m.cursor
}

// SetCursor selects row i if it exists.
func (m *MetricsComponent) SetCursor(i int) {
	if i >= 0 && i < len(m.rows) {
		m.cursor = i
	}
}

// ScrollUp moves the cursor up, wrapping at the top.
func (m *MetricsComponent) ScrollUp() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.rows)) % len(m.rows)
}

// ScrollDown moves the cursor down, wrapping at the bottom.
func (m *MetricsComponent) ScrollDown() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.rows)
}

// View renders the metrics list.
func (m *MetricsComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("METRICS"))
	sb.WriteString("\n\n")

	if len(m.rows) == 0 {
		sb.WriteString(mutedStyle.Render("  No project selected"))
		return sb.String()
	}

	for i, row := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		sb.WriteString(marker)
		sb.WriteString(titleStyle.Render(row.Title))
		sb.WriteString("\n    ")
		sb.WriteString(mutedStyle.Render(row.Detail))
		sb.WriteString("\n")
	}

	return sb.String()
}
