package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ProjectInfo is the header summary of the selected project.
type ProjectInfo struct {
	Name     string
	Contract string // empty when the project has no contract
	Index    int
	Total    int
}

// ProjectComponent renders the selected project's header line.
type ProjectComponent struct {
	info ProjectInfo
}

// NewProjectComponent creates a new project header.
func NewProjectComponent() *ProjectComponent {
	return &ProjectComponent{}
}

// Update sets the displayed project.
func (p *ProjectComponent) Update(info ProjectInfo) {
	p.info = info
}

// View renders the project header.
func (p *ProjectComponent) View() string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	if p.info.Total == 0 {
		return mutedStyle.Render("No projects loaded")
	}

	line := nameStyle.Render(p.info.Name)
	if p.info.Contract != "" {
		line += mutedStyle.Render(" · " + ShortAddress(p.info.Contract))
	}
	line += mutedStyle.Render(fmt.Sprintf("  (%d/%d)", p.info.Index+1, p.info.Total))
	return line
}

// ShortAddress abbreviates a hex address to 0x1234…abcd.
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
