// Package viz is the terminal frontend: a braille-canvas arena view inside
// a bubbletea program, with a ball count sparkline and live parameter tuning.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/splitsim/internal/engine"
)

const (
	canvasWidth     = 64
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model wraps a World for terminal rendering.
type Model struct {
	world  *engine.World
	canvas *Canvas

	running      bool
	countHistory []float64

	params    map[string]float64
	paramKeys []string
	selected  int
}

func NewModel(w *engine.World) Model {
	params := w.GetParams()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		world:        w,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		running:      true,
		countHistory: make([]float64, 0, historyCapacity),
		params:       params,
		paramKeys:    keys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.world.Reset()
			m.countHistory = m.countHistory[:0]
		case "s":
			m.world.Step([]engine.SpawnCommand{{
				X: m.world.Params().CenterX,
				Y: m.world.Params().CenterY,
			}})
		case "tab":
			if len(m.paramKeys) > 0 {
				m.selected = (m.selected + 1) % len(m.paramKeys)
			}
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x, y := m.cellToWorld(msg.X, msg.Y)
			m.world.Step([]engine.SpawnCommand{{X: x, Y: y}})
		}
	case TickMsg:
		if m.running {
			m.world.Step(nil)
			m.countHistory = append(m.countHistory, float64(m.world.Count()))
			if len(m.countHistory) > historyCapacity {
				m.countHistory = m.countHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.params[key] * factor
	if err := m.world.SetParam(key, val); err != nil {
		return
	}
	m.params[key] = val
}

// cellToWorld maps a terminal cell (accounting for the canvas padding) to
// simulation coordinates.
func (m *Model) cellToWorld(cellX, cellY int) (float64, float64) {
	// canvasStyle pads 1 row, 2 columns.
	subX := float64((cellX - 2) * 2)
	subY := float64((cellY - 1) * 4)

	scaleX := float64(engine.DefaultWidth) / float64(canvasWidth*2)
	scaleY := float64(engine.DefaultHeight) / float64(canvasHeight*4)
	return subX * scaleX, subY * scaleY
}

func (m *Model) draw() {
	m.canvas.Clear()
	p := m.world.Params()

	scaleX := float64(canvasWidth*2) / float64(engine.DefaultWidth)
	scaleY := float64(canvasHeight*4) / float64(engine.DefaultHeight)

	m.canvas.DrawEllipse(
		int(p.CenterX*scaleX), int(p.CenterY*scaleY),
		p.BoundaryRadius*scaleX, p.BoundaryRadius*scaleY)

	for _, b := range m.world.Snapshot() {
		cx, cy := int(b.X*scaleX), int(b.Y*scaleY)
		r := b.Radius * scaleX
		if r < 1 {
			m.canvas.Set(cx, cy)
			continue
		}
		m.canvas.FillCircle(cx, cy, r)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SPLITSIM") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.countHistory) > 1 {
		chart := asciigraph.Plot(m.countHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Balls"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.world.Tick())) + "\n")
	s.WriteString(labelStyle.Render("Balls") + valueStyle.Render(fmt.Sprintf("%d", m.world.Count())) + "\n")
	s.WriteString(labelStyle.Render("Splits") + valueStyle.Render(fmt.Sprintf("%d", m.world.TotalSplits())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.0f", m.world.Energy())) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-12s %.2f", k, m.params[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset S:Spawn Q:Quit\nClick:Spawn Tab/↑↓:Tune"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the bubbletea program with mouse support and blocks until it
// exits.
func Run(w *engine.World) error {
	p := tea.NewProgram(NewModel(w), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
