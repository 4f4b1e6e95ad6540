package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fd1az/project-tracker/business/projects/app"
	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/business/projects/infra/mock"
	"github.com/fd1az/project-tracker/pkg/ui/components"
)

const (
	// DefaultLoadingDelay is how long the drawer shows its loading state after activation.
	DefaultLoadingDelay = 500 * time.Millisecond
	// DefaultDrawerWidth is the drawer width in columns, border included.
	DefaultDrawerWidth = 44

	minDrawerWidth = 20
	drawerFrame    = 5 // left border + horizontal padding
)

// DrawerProps are the caller-owned inputs of the metric drawer.
type DrawerProps struct {
	Open          bool
	OnClose       tea.Cmd // invoked by both the back and the close affordance
	Metric        domain.MetricKey
	Project       *domain.Project
	ShowBackArrow bool
}

// DrawerOption configures a Drawer.
type DrawerOption func(*Drawer)

// WithLoadingDelay sets the activation delay. Zero or less skips the loading state.
func WithLoadingDelay(d time.Duration) DrawerOption {
	return func(dr *Drawer) { dr.delay = d }
}

// WithWidth sets the drawer width in columns.
func WithWidth(w int) DrawerOption {
	return func(dr *Drawer) {
		if w >= minDrawerWidth {
			dr.width = w
		}
	}
}

// WithStatsDeriver replaces the placeholder statistics.
func WithStatsDeriver(s app.StatsDeriver) DrawerOption {
	return func(dr *Drawer) { dr.stats = s }
}

// WithRecorder observes drawer activity.
func WithRecorder(r app.ActivityRecorder) DrawerOption {
	return func(dr *Drawer) { dr.recorder = r }
}

// WithDefaultTimeframe sets the initially selected timeframe.
func WithDefaultTimeframe(tf domain.Timeframe) DrawerOption {
	return func(dr *Drawer) { dr.defaultTF = tf }
}

// WithTimeframeReset makes every activation start from the default timeframe
// instead of the last selection.
func WithTimeframeReset(reset bool) DrawerOption {
	return func(dr *Drawer) { dr.resetTimeframe = reset }
}

// Drawer is the right-anchored metric details panel.
type Drawer struct {
	props DrawerProps

	// Local UI state
	timeframe domain.Timeframe
	loading   bool
	err       string

	// Activation bookkeeping
	activation   uint64
	activeMetric domain.MetricKey
	cancel       context.CancelFunc
	closed       bool

	// Configuration
	delay          time.Duration
	width          int
	defaultTF      domain.Timeframe
	resetTimeframe bool
	stats          app.StatsDeriver
	recorder       app.ActivityRecorder

	keys   DrawerKeyMap
	loader components.LoadingComponent
}

// NewDrawer creates a closed drawer.
func NewDrawer(opts ...DrawerOption) Drawer {
	d := Drawer{
		delay:     DefaultLoadingDelay,
		width:     DefaultDrawerWidth,
		defaultTF: domain.DefaultTimeframe,
		stats:     mock.NewStats(),
		recorder:  app.NopRecorder{},
		keys:      DefaultDrawerKeyMap(),
		loader:    components.NewLoadingComponent(ColorPrimary),
	}
	for _, opt := range opts {
		opt(&d)
	}
	d.timeframe = d.defaultTF
	d.syncKeys()
	return d
}

// RenderDrawer renders props once with no loading delay.
func RenderDrawer(props DrawerProps, opts ...DrawerOption) string {
	d := NewDrawer(append(opts, WithLoadingDelay(0))...)
	d, _ = d.SetProps(props)
	return d.View()
}

// Props returns the current props.
func (d Drawer) Props() DrawerProps { return d.props }

// Loading reports whether the loading indicator is shown.
func (d Drawer) Loading() bool { return d.loading }

// Err returns the displayed error, or "".
func (d Drawer) Err() string { return d.err }

// Timeframe returns the selected timeframe.
func (d Drawer) Timeframe() domain.Timeframe { return d.timeframe }

// Width returns the drawer width in columns.
func (d Drawer) Width() int { return d.width }

// KeyMap returns the drawer bindings, enabled for the current state.
func (d Drawer) KeyMap() DrawerKeyMap { return d.keys }

// Visible reports whether View renders anything.
func (d Drawer) Visible() bool {
	if !d.props.Open || d.props.Project == nil {
		return false
	}
	_, ok := domain.Lookup(d.props.Metric)
	return ok
}

// SetProps applies new props. A change of (Open, Metric) that leaves the
// drawer open with a metric starts a new activation and cancels the previous one.
func (d Drawer) SetProps(p DrawerProps) (Drawer, tea.Cmd) {
	prev := d.props
	d.props = p

	if prev.Open == p.Open && prev.Metric == p.Metric {
		d.syncKeys()
		return d, nil
	}

	d.stop()

	var cmd tea.Cmd
	if p.Open && p.Metric != "" {
		cmd = d.activate()
	}
	d.syncKeys()
	return d, cmd
}

func (d *Drawer) activate() tea.Cmd {
	d.activation++
	d.activeMetric = d.props.Metric
	d.err = ""
	d.closed = false
	if d.resetTimeframe {
		d.timeframe = d.defaultTF
	}
	d.loader = d.loader.SetMessage(fmt.Sprintf("Loading %s details...", d.props.Metric))
	d.recorder.Activated(d.activation, d.activeMetric)

	if d.delay <= 0 {
		d.recorder.Loaded(d.activation, d.activeMetric)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.loading = true

	return tea.Batch(waitForActivation(ctx, d.activation, d.delay), d.loader.Tick)
}

// stop cancels the in-flight activation, if any, and clears the loading state.
func (d *Drawer) stop() {
	d.cancelPending()
	d.loading = false
}

func (d *Drawer) cancelPending() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.cancel = nil
	if d.loading {
		d.recorder.Cancelled(d.activation, d.activeMetric)
	}
}

// waitForActivation completes after delay unless ctx is cancelled first, in
// which case it yields no message.
func waitForActivation(ctx context.Context, activation uint64, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return activationDoneMsg{activation: activation}
		case <-ctx.Done():
			return nil
		}
	}
}

// Update handles drawer messages.
func (d Drawer) Update(msg tea.Msg) (Drawer, tea.Cmd) {
	switch msg := msg.(type) {
	case activationDoneMsg:
		if msg.activation != d.activation || !d.loading {
			return d, nil
		}
		if d.cancel != nil {
			d.cancel()
			d.cancel = nil
		}
		d.loading = false
		d.recorder.Loaded(d.activation, d.activeMetric)
		d.syncKeys()

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.loader, cmd = d.loader.Update(msg)
		return d, cmd

	case ErrorMsg:
		d.err = ""
		if msg.Error != nil {
			d.err = msg.Error.Error()
		}
		d.syncKeys()

	case tea.KeyMsg:
		if !d.Visible() {
			return d, nil
		}
		switch {
		case key.Matches(msg, d.keys.Close):
			return d.close(app.CloseViaClose)
		case key.Matches(msg, d.keys.Back):
			return d.close(app.CloseViaBack)
		case key.Matches(msg, d.keys.NextTimeframe):
			d.setTimeframe(d.timeframe.Next())
		case key.Matches(msg, d.keys.PrevTimeframe):
			d.setTimeframe(d.timeframe.Prev())
		}
	}

	return d, nil
}

// close issues OnClose at most once per activation.
func (d Drawer) close(via app.CloseAffordance) (Drawer, tea.Cmd) {
	if d.closed {
		return d, nil
	}
	d.closed = true
	d.cancelPending()
	d.recorder.Closed(d.props.Metric, via)
	return d, d.props.OnClose
}

func (d *Drawer) setTimeframe(tf domain.Timeframe) {
	if tf == d.timeframe {
		return
	}
	d.timeframe = tf
	d.recorder.TimeframeChanged(d.props.Metric, tf)
}

func (d *Drawer) syncKeys() {
	d.keys.Back.SetEnabled(d.props.ShowBackArrow)
	showSelector := hasTimeframeSelector(d.props.Metric) && !d.loading && d.err == ""
	d.keys.NextTimeframe.SetEnabled(showSelector)
	d.keys.PrevTimeframe.SetEnabled(showSelector)
}

// hasTimeframeSelector reports whether a metric shows the timeframe selector.
// Commits never does.
func hasTimeframeSelector(k domain.MetricKey) bool {
	switch k {
	case domain.MetricWallets, domain.MetricTVL, domain.MetricMentions:
		return true
	}
	return false
}

// View renders the drawer, or "" when it is closed or its inputs are invalid.
func (d Drawer) View() string {
	if !d.Visible() {
		return ""
	}
	desc, _ := domain.Lookup(d.props.Metric)
	inner := d.innerWidth()

	var sb strings.Builder
	sb.WriteString(d.renderHeader(inner))
	sb.WriteString("\n")
	sb.WriteString(DividerStyle.Render(strings.Repeat("─", inner)))
	sb.WriteString("\n\n")
	sb.WriteString(DescriptionStyle.Width(inner).Render(desc.Description))
	sb.WriteString("\n\n")
	sb.WriteString(d.renderContent())

	return DrawerStyle.Width(d.width - 1).Render(sb.String())
}

func (d Drawer) innerWidth() int {
	return d.width - drawerFrame
}

func (d Drawer) renderHeader(inner int) string {
	left := DrawerTitleStyle.Render(domain.Heading(d.props.Metric))
	if d.props.ShowBackArrow {
		left = AffordanceStyle.Render("←") + " " + left
	}
	closeIcon := AffordanceStyle.Render("✕")
	if avail := inner - lipgloss.Width(closeIcon) - 1; lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(closeIcon)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + closeIcon
}

func (d Drawer) renderContent() string {
	switch {
	case d.loading:
		return d.loader.View()
	case d.err != "":
		return ErrorStyle.Render(d.err)
	}

	metric := d.props.Metric
	project := *d.props.Project

	var stats domain.Stats
	if d.stats != nil {
		stats = d.stats.Derive(metric, d.timeframe, project)
	}

	lines := []string{HeadingStyle.Render(domain.Heading(metric)), ""}
	if hasTimeframeSelector(metric) {
		lines = append(lines, d.selector().View(), "")
	}
	for _, r := range contentRows(metric, d.timeframe, project, stats) {
		lines = append(lines, RowLabelStyle.Render(r.label+":")+" "+r.value)
	}
	return strings.Join(lines, "\n")
}

func (d Drawer) selector() components.SelectorComponent {
	tfs := domain.Timeframes()
	options := make([]string, len(tfs))
	for i, tf := range tfs {
		options[i] = tf.Label()
	}
	s := components.NewSelectorComponent("Timeframe", options, ColorPrimary)
	s.Selected = d.timeframe.Label()
	return s
}

// row is one labeled value in the metric content.
type row struct {
	label string
	value string
}

// contentRows builds the labeled values for a metric. Stats of the wrong
// kind are treated as zero values.
func contentRows(metric domain.MetricKey, tf domain.Timeframe, p domain.Project, s domain.Stats) []row {
	switch metric {
	case domain.MetricWallets:
		ws, _ := s.(domain.WalletStats)
		return []row{
			{"Total Active Wallets", domain.FormatInt(p.Wallets)},
			{"Increase in " + tf.Label(), "+" + strconv.FormatInt(ws.Increase, 10)},
			{"Inactive Wallets", strconv.FormatInt(ws.Inactive, 10)},
		}
	case domain.MetricTVL:
		ts, _ := s.(domain.TVLStats)
		return []row{
			{"Current TVL", "$" + domain.FormatDecimal(p.TVL)},
			{"Change in " + tf.Label(), domain.FormatPercentChange(ts.PercentChange)},
			{"Compared to " + ts.ComparisonLabel + " TVL", "$" + domain.FormatDecimal(ts.ComparisonValue)},
		}
	case domain.MetricMentions:
		ms, _ := s.(domain.MentionStats)
		return []row{
			{"Mentions", strconv.FormatInt(ms.Count, 10)},
			{"Impressions", strconv.FormatInt(ms.Impressions, 10)},
			{"Likes", strconv.FormatInt(ms.Likes, 10)},
			{"Comments", strconv.FormatInt(ms.Comments, 10)},
		}
	case domain.MetricCommits:
		cs, _ := s.(domain.CommitStats)
		return []row{
			{"First Commit Date", formatDate(cs.First)},
			{"Last Commit Date", formatDate(cs.Last)},
			{"Total Commits", strconv.FormatInt(cs.Total, 10)},
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
