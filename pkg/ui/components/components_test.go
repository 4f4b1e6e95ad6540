package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestLoadingComponent(t *testing.T) {
	l := NewLoadingComponent(lipgloss.Color("#7C3AED")).SetMessage("Loading tvl details...")

	if got := l.Message(); got != "Loading tvl details..." {
		t.Errorf("Message() = %q", got)
	}
	if got := ansi.Strip(l.View()); !strings.HasSuffix(got, " Loading tvl details...") {
		t.Errorf("View() = %q", got)
	}

	msg := l.Tick()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Fatalf("Tick() = %T, want spinner.TickMsg", msg)
	}
	next, cmd := l.Update(msg)
	if cmd == nil {
		t.Error("Update(tick) should schedule the next frame")
	}
	if next.Message() != l.Message() {
		t.Error("Update changed the message")
	}
}

func TestSelectorComponent(t *testing.T) {
	s := NewSelectorComponent("Timeframe", []string{"24h", "7d", "30d"}, lipgloss.Color("#7C3AED"))
	s.Selected = "7d"

	got := ansi.Strip(s.View())
	if !strings.HasPrefix(got, "Timeframe:") {
		t.Errorf("View() = %q, want label first", got)
	}
	if !strings.Contains(got, "[7d]") {
		t.Errorf("View() = %q, want selected option bracketed", got)
	}
	for _, opt := range []string{"24h", "30d"} {
		if !strings.Contains(got, " "+opt+" ") || strings.Contains(got, "["+opt+"]") {
			t.Errorf("View() = %q, want %s shown unselected", got, opt)
		}
	}
}

func TestMetricsComponent_Cursor(t *testing.T) {
	m := NewMetricsComponent()
	m.ScrollDown() // no rows: no-op
	if m.Cursor() != 0 {
		t.Fatalf("Cursor() = %d on empty list", m.Cursor())
	}
	if got := ansi.Strip(m.View()); !strings.Contains(got, "No project selected") {
		t.Errorf("empty View() = %q", got)
	}

	m.Update([]MetricRow{
		{Title: "Total Value Locked (TVL)", Detail: "Current TVL: $1,000"},
		{Title: "Active Wallets", Detail: "Active Wallets: 5"},
		{Title: "Social Mentions", Detail: "Mentions (24h): 0"},
	})

	tests := []struct {
		name string
		move func()
		want int
	}{
		{"down", m.ScrollDown, 1},
		{"down again", m.ScrollDown, 2},
		{"wrap bottom", m.ScrollDown, 0},
		{"wrap top", m.ScrollUp, 2},
	}
	for _, tt := range tests {
		tt.move()
		if m.Cursor() != tt.want {
			t.Errorf("%s: Cursor() = %d, want %d", tt.name, m.Cursor(), tt.want)
		}
	}

	m.SetCursor(9)
	if m.Cursor() != 2 {
		t.Errorf("SetCursor(out of range) moved cursor to %d", m.Cursor())
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "▸ Social Mentions") {
		t.Errorf("View() = %q, want cursor on Social Mentions", view)
	}
	if !strings.Contains(view, "Current TVL: $1,000") {
		t.Errorf("View() = %q, want detail lines", view)
	}

	m.Update(m.rows[:1])
	if m.Cursor() != 0 {
		t.Errorf("Cursor() after shrink = %d, want 0", m.Cursor())
	}
}

func TestProjectComponent(t *testing.T) {
	p := NewProjectComponent()
	if got := ansi.Strip(p.View()); got != "No projects loaded" {
		t.Errorf("empty View() = %q", got)
	}

	p.Update(ProjectInfo{
		Name:     "Uniswap",
		Contract: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
		Index:    0,
		Total:    3,
	})
	got := ansi.Strip(p.View())
	want := "Uniswap · 0x1f98…F984  (1/3)"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestShortAddress(t *testing.T) {
	if got := ShortAddress("0xabc"); got != "0xabc" {
		t.Errorf("ShortAddress(short) = %q", got)
	}
}
