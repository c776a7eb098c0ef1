// Package viz provides the interactive terminal view of a running
// attractor simulation.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chaoscope/internal/dynamo"
	"github.com/san-kum/chaoscope/internal/render"
)

const (
	canvasWidth     = 70
	canvasHeight    = 22
	historyCapacity = 600
	stepsPerFrame   = 8
)

type TickMsg time.Time

// Model holds simulation state and visualization buffers for the live view.
type Model struct {
	sys        dynamo.System
	integrator dynamo.Integrator
	state      dynamo.State
	t, dt      float64

	canvas *render.Canvas
	trail  []dynamo.State

	running    bool
	systemName string
	showHelp   bool

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	initialState  dynamo.State

	history []float64 // x0 samples for the sparkline
}

// NewModel initializes the live view for a system.
func NewModel(sys dynamo.System, integ dynamo.Integrator, initState []float64, dt float64, systemName string) Model {
	params := make(map[string]float64)
	if c, ok := sys.(dynamo.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		initialParams[k] = v
	}
	sort.Strings(keys)

	return Model{
		sys:           sys,
		integrator:    integ,
		state:         dynamo.State(initState).Clone(),
		t:             0,
		dt:            dt,
		canvas:        render.NewCanvas(canvasWidth, canvasHeight),
		trail:         make([]dynamo.State, 0, historyCapacity),
		running:       true,
		systemName:    systemName,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		initialState:  dynamo.State(initState).Clone(),
		history:       make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	next := m.integrator.Step(m.sys, m.state, m.t, m.dt)
	if !next.IsValid() {
		m.running = false
		return
	}
	m.state = next
	m.t += m.dt

	m.trail = append(m.trail, m.state.Clone())
	if len(m.trail) > historyCapacity {
		m.trail = m.trail[1:]
	}

	m.history = append(m.history, m.state[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	if c, ok := m.sys.(dynamo.Configurable); ok {
		_ = c.SetParam(key, newVal)
	}
}

func (m *Model) reset() {
	m.t = 0
	m.state = m.initialState.Clone()
	m.trail = m.trail[:0]
	m.history = m.history[:0]
	for k, v := range m.initialParams {
		m.params[k] = v
		if c, ok := m.sys.(dynamo.Configurable); ok {
			_ = c.SetParam(k, v)
		}
	}
}

// drawTrail projects the trail onto the (x0, x2) plane, autoscaled.
func (m *Model) drawTrail() {
	m.canvas.Clear()
	if len(m.trail) < 2 {
		return
	}

	xi, yi := 0, 2
	if m.sys.StateDim() < 3 {
		yi = 1
	}

	xMin, xMax := m.trail[0][xi], m.trail[0][xi]
	yMin, yMax := m.trail[0][yi], m.trail[0][yi]
	for _, s := range m.trail {
		if s[xi] < xMin {
			xMin = s[xi]
		}
		if s[xi] > xMax {
			xMax = s[xi]
		}
		if s[yi] < yMin {
			yMin = s[yi]
		}
		if s[yi] > yMax {
			yMax = s[yi]
		}
	}
	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	subW := float64(canvasWidth*2 - 1)
	subH := float64(canvasHeight*4 - 1)
	for _, s := range m.trail {
		px := int(subW * (s[xi] - xMin) / xRange)
		py := int(subH * (s[yi] - yMin) / yRange)
		m.canvas.Set(px, int(subH)-py)
	}
}

func (m Model) View() string {
	m.drawTrail()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render(strings.ToUpper(m.systemName)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	stats.WriteString(status + "\n\n")
	stats.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	for i, v := range m.state {
		stats.WriteString(labelStyle.Render(fmt.Sprintf("x%d", i)) + valueStyle.Render(fmt.Sprintf("%+.4f", v)) + "\n")
	}

	if len(m.paramKeys) > 0 {
		stats.WriteString("\n")
		for i, k := range m.paramKeys {
			line := fmt.Sprintf("%s%s", labelStyle.Render(k), valueStyle.Render(fmt.Sprintf("%.4f", m.params[k])))
			if i == m.selected {
				line = activeParamStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			stats.WriteString(line + "\n")
		}
	}

	if len(m.history) > 2 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption("x0"),
		)
		stats.WriteString(graphStyle.Render(graph))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	help := "space pause · r reset · tab select param · ↑/↓ adjust · q quit"
	if m.showHelp {
		help = "space: pause/resume\nr: reset state and parameters\ntab: cycle parameter\nup/down: scale selected parameter ±5%\nq: quit"
	}

	return view + "\n" + helpStyle.Render(help)
}
