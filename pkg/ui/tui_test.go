package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/fd1az/project-tracker/business/projects/domain"
)

func sampleProjects() []domain.Project {
	return []domain.Project{
		{
			ID:       "uniswap",
			Name:     "Uniswap",
			Contract: common.HexToAddress("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"),
			TVL:      decimal.NewFromInt(4200000000),
			Wallets:  1234567,
			Mentions: make([]domain.Mention, 2),
			Commits:  87,
		},
		{ID: "lido", Name: "Lido", TVL: decimal.NewFromInt(900), Wallets: 12, Commits: 5},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModel_Overview(t *testing.T) {
	m := New(sampleProjects(), WithLoadingDelay(0))
	got := ansi.Strip(m.View())

	for _, want := range []string{
		"Project Tracker",
		"Uniswap · 0x1f98…F984  (1/2)",
		"Current TVL: $4,200,000,000",
		"Active Wallets: 1,234,567",
		"Mentions (24h): 2",
		"Commits (30d): 87",
		"Development Activity",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("View() missing %q\n%s", want, got)
		}
	}
	if m.drawer.Visible() {
		t.Error("drawer visible before any selection")
	}
}

func TestModel_OpenAndCloseDrawer(t *testing.T) {
	m := New(sampleProjects(), WithLoadingDelay(0), WithWidth(60))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})

	// Enter opens the metric under the cursor with the back affordance.
	m, _ = update(t, m, keyMsg("down"))
	m, _ = update(t, m, keyMsg("enter"))
	if !m.drawer.Visible() {
		t.Fatal("drawer not visible after enter")
	}
	props := m.drawer.Props()
	if props.Metric != domain.MetricWallets || !props.ShowBackArrow {
		t.Errorf("props = %+v, want wallets with back arrow", props)
	}
	if props.Project == nil || props.Project.ID != "uniswap" {
		t.Errorf("props.Project = %+v", props.Project)
	}
	if got := ansi.Strip(m.View()); !strings.Contains(got, "Total Active Wallets: 1,234,567") {
		t.Errorf("View() missing drawer content\n%s", got)
	}

	// Navigation keys go to the drawer while it is open.
	m, _ = update(t, m, keyMsg("tab"))
	if m.selected != 0 {
		t.Error("tab switched project while the drawer was open")
	}
	if m.drawer.Timeframe() != domain.Timeframe30d {
		t.Errorf("Timeframe() = %s, want 30d", m.drawer.Timeframe())
	}

	// Back invokes the close callback; its message closes the drawer.
	m, cmd := update(t, m, keyMsg("backspace"))
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("close produced %v", msgs)
	}
	if _, ok := msgs[0].(drawerClosedMsg); !ok {
		t.Fatalf("close produced %T", msgs[0])
	}
	m, _ = update(t, m, msgs[0])
	if m.drawer.Visible() {
		t.Error("drawer still visible after close")
	}
}

func TestModel_JumpOpensWithoutBack(t *testing.T) {
	m := New(sampleProjects(), WithLoadingDelay(0))
	m, _ = update(t, m, keyMsg("4"))

	props := m.drawer.Props()
	if props.Metric != domain.MetricCommits || props.ShowBackArrow {
		t.Errorf("props = %+v, want commits without back arrow", props)
	}
	if m.metrics.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", m.metrics.Cursor())
	}

	// Backspace is not bound without the back affordance.
	m, cmd := update(t, m, keyMsg("backspace"))
	if cmd != nil || !m.drawer.Visible() {
		t.Error("backspace closed a drawer without a back affordance")
	}
}

func TestModel_CycleProjects(t *testing.T) {
	m := New(sampleProjects(), WithLoadingDelay(0))

	m, _ = update(t, m, keyMsg("tab"))
	if got := ansi.Strip(m.View()); !strings.Contains(got, "Lido  (2/2)") || !strings.Contains(got, "Current TVL: $900") {
		t.Errorf("View() after tab:\n%s", got)
	}

	m, _ = update(t, m, keyMsg("tab"))
	if m.selected != 0 {
		t.Errorf("selected = %d after wrap, want 0", m.selected)
	}
	m, _ = update(t, m, keyMsg("shift+tab"))
	if m.selected != 1 {
		t.Errorf("selected = %d after shift+tab, want 1", m.selected)
	}

	m, _ = update(t, m, keyMsg("enter"))
	if p := m.drawer.Props().Project; p == nil || p.ID != "lido" {
		t.Errorf("drawer project = %+v, want lido", p)
	}
}

func TestModel_NoProjects(t *testing.T) {
	m := New(nil)
	m, cmd := update(t, m, keyMsg("enter"))
	if cmd != nil || m.drawer.Visible() {
		t.Error("drawer opened without projects")
	}
	if got := ansi.Strip(m.View()); !strings.Contains(got, "No projects loaded") {
		t.Errorf("View() = %q", got)
	}
}

func TestModel_ErrorForwardedToDrawer(t *testing.T) {
	m := New(sampleProjects(), WithLoadingDelay(0))
	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, ErrorMsg{Error: errors.New("fetch failed")})

	if m.drawer.Err() != "fetch failed" {
		t.Errorf("drawer Err() = %q", m.drawer.Err())
	}
	if got := ansi.Strip(m.View()); !strings.Contains(got, "fetch failed") {
		t.Errorf("View() missing error\n%s", got)
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(sampleProjects())
	m, _ = update(t, m, keyMsg("enter"))

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if got := m.View(); !strings.Contains(got, "Goodbye") {
		t.Errorf("View() = %q", got)
	}
}
