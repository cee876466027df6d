// Package viz renders particle motion in the terminal. The animation loop
// is an external driver for the particle kernel: each frame it hands the
// same particle set back to the evolver for a fixed slice of simulated time
// and redraws whatever positions come back.
package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JulianaRamayo/simkern/internal/particle"
)

const (
	canvasWidth  = 60
	canvasHeight = 24
	worldLimit   = 1.0
)

var (
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the particle animation: one Evolve call per frame, then a
// redraw from the mutated positions.
type Model struct {
	evolver   particle.Evolver
	particles []particle.Particle
	frameTime float64
	fps       int
	canvas    *Canvas
	simTime   float64
	frames    int
	running   bool
}

func NewModel(evolver particle.Evolver, ps []particle.Particle, frameTime float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		evolver:   evolver,
		particles: ps,
		frameTime: frameTime,
		fps:       fps,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		running:   true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			m.evolver.Evolve(m.particles, m.frameTime)
			m.simTime += m.frameTime
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, p := range m.particles {
		m.canvas.PlotWorld(p.X, p.Y, worldLimit)
	}

	header := headerStyle.Render(fmt.Sprintf("particles · %s strategy", m.evolver.Name()))

	meanR := 0.0
	for _, p := range m.particles {
		meanR += math.Sqrt(p.X*p.X + p.Y*p.Y)
	}
	if len(m.particles) > 0 {
		meanR /= float64(len(m.particles))
	}

	state := "running"
	if !m.running {
		state = "paused"
	}
	stats := statsStyle.Render(fmt.Sprintf(
		"t=%.3f  frames=%d  n=%d  mean radius=%.4f  [%s]",
		m.simTime, m.frames, len(m.particles), meanR, state))

	help := helpStyle.Render("space: pause · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		canvasStyle.Render(m.canvas.String()),
		stats,
		help,
	)
}
