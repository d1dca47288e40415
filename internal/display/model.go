// Package display is the interactive cockpit: a bubbletea program that
// turns key presses into controls and redraws whenever the physics loop
// publishes a new snapshot.
package display

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/instruments"
	"github.com/yegors/termflight/internal/panel"
	"github.com/yegors/termflight/pkg/logger"
)

const (
	// below this terminal width the radar and map are left out
	compactWidth = 110

	trendWidth  = 40
	trendHeight = 5

	helpText = "A/D throttle  ↑/↓ pitch  ←/→ roll  G gear  F flaps  Q quit"
)

// Controller is the simulator as seen by the display
type Controller interface {
	Apply(c flight.Control) flight.State
	Snapshot() flight.State
}

// TickMsg carries a snapshot published by the physics loop
type TickMsg struct {
	State flight.State
	At    time.Time
}

// Model is the bubbletea model of the cockpit
type Model struct {
	ctrl     Controller
	panel    *panel.Aggregator
	renderer *instruments.Renderer
	trend    *Trend
	state    flight.State
	start    time.Time
	at       time.Time
	width    int
	height   int
	logger   *logger.Logger
}

// NewModel creates the cockpit model. start anchors the radar sweep.
func NewModel(ctrl Controller, agg *panel.Aggregator, r *instruments.Renderer, trendSamples int, start time.Time, logger *logger.Logger) Model {
	s := ctrl.Snapshot()
	trend := NewTrend(trendSamples)
	trend.Add(s.Altitude)
	return Model{
		ctrl:     ctrl,
		panel:    agg,
		renderer: r,
		trend:    trend,
		state:    s,
		start:    start,
		at:       start,
		logger:   logger.Named("display"),
	}
}

// Notify returns a function that forwards snapshots to the running program.
// Program.Send is safe to call from any goroutine.
func Notify(p *tea.Program) func(flight.State) {
	return func(s flight.State) {
		p.Send(TickMsg{State: s, At: time.Now()})
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("termflight")
}

// Update handles key presses, window resizes and physics snapshots
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			m.logger.Info("Quit requested", logger.String("key", key))
			return m, tea.Quit
		}
		if c, ok := flight.ParseControl(key); ok {
			m.state = m.ctrl.Apply(c)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		m.state = msg.State
		m.at = msg.At
		m.trend.Add(msg.State.Altitude)
	}
	return m, nil
}

// State returns the snapshot the model last drew from
func (m Model) State() flight.State {
	return m.state
}

func (m Model) options() panel.Options {
	if m.width > 0 && m.width < compactWidth {
		return panel.Options{}
	}
	return panel.FullOptions
}

// View draws the whole cockpit
func (m Model) View() string {
	p := m.panel.Build(m.state, m.renderer.SweepAngle(m.at.Sub(m.start)), m.options())

	banner := bannerStyle.Render("✈  TERMFLIGHT  ✈") + "   " + RenderLine(p.Status)

	pfd := lipgloss.JoinHorizontal(lipgloss.Top,
		box("", RenderGrid(p.Airspeed)),
		box("ATTITUDE", RenderGrid(p.Horizon)),
		box("", RenderGrid(p.Altimeter)),
	)

	secondary := []string{
		box("HEADING", RenderGrid(p.HeadingDial), titleStyle.Render(p.Heading)),
		box("", RenderGrid(p.VSI)),
	}
	if p.Radar != nil {
		secondary = append(secondary, box("RADAR", RenderGrid(*p.Radar)))
	}
	if p.Map != nil {
		secondary = append(secondary, box("NAVIGATION DISPLAY",
			RenderGrid(*p.Map),
			legendStyle.Render("N↑ E→ S↓ W← | 1km/tile"),
			RenderLine(p.Runway),
			RenderLine(p.Dest)))
	}

	systems := []string{
		box("", RenderGrid(p.Engine)),
		box("═══ WARNINGS ═══", RenderGrid(p.WarningsGrid)),
		box("LANDING GEAR", RenderLine(p.Gear)),
		box("FLAPS", RenderLine(p.Flaps)),
	}
	if plot := m.trend.Plot(trendWidth, trendHeight, "ALTITUDE (ft)"); plot != "" {
		systems = append(systems, box("TREND", graphStyle.Render(plot)))
	}

	var sb strings.Builder
	sb.WriteString(banner + "\n")
	sb.WriteString(pfd + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, secondary...) + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, systems...) + "\n")
	sb.WriteString(helpStyle.Render(helpText))
	return frameStyle().Render(sb.String())
}
