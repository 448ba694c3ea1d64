package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

const (
	canvasPadX      = 2
	canvasPadY      = 1
	panelWidth      = 40
	chartWidth      = 24
	historyCapacity = 600
	minCols         = 8
	minRows         = 4
)

const helpText = `Space  pause / resume
R      respawn bodies
T      cycle theme
G      start / stop GIF
Mouse  push bodies away
Click  push harder
?      toggle help
Q      quit`

type TickMsg time.Time

type Options struct {
	Title   string
	Scale   float64
	FPS     int
	Theme   string
	GIFPath string
}

// Model hosts a world in the terminal: ticks drive Step, the mouse drives the
// pointer and terminal resizes respawn the population.
type Model struct {
	world    *world.World
	canvas   *Canvas
	opts     Options
	theme    Theme
	running  bool
	showHelp bool

	last       world.FrameStats
	energy     []float64
	collisions []int
	recorder   *Recorder
}

func NewModel(w *world.World, opts Options) Model {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "particles"
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "particlesim.gif"
	}
	return Model{
		world:      w,
		canvas:     CanvasFor(w.Width(), w.Height(), opts.Scale),
		opts:       opts,
		theme:      GetTheme(opts.Theme),
		running:    true,
		energy:     make([]float64, 0, historyCapacity),
		collisions: make([]int, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recorder != nil {
				m.toggleRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset(m.world.Width(), m.world.Height())
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.last = m.world.Step(m.canvas)

	m.energy = append(m.energy, m.world.KineticEnergy())
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
	m.collisions = append(m.collisions, m.last.Collisions)
	if len(m.collisions) > historyCapacity {
		m.collisions = m.collisions[1:]
	}

	if m.recorder != nil {
		m.recorder.Capture(m.canvas)
	}
}

func (m *Model) reset(width, height float64) {
	m.world.Reinitialize(width, height)
	m.canvas.Reset()
	m.last = world.FrameStats{}
	m.energy = m.energy[:0]
	m.collisions = m.collisions[:0]
}

// resize fits the canvas to the space left of the panel and respawns the
// world to cover it exactly.
func (m *Model) resize(termW, termH int) {
	cols := termW - 2*canvasPadX - panelWidth - 1
	rows := termH - 2*canvasPadY
	cols = max(cols, minCols)
	rows = max(rows, minRows)

	if m.canvas.Width == cols && m.canvas.Height == rows {
		return
	}
	// GIF frames must share one size.
	if m.recorder != nil {
		m.toggleRecording()
	}
	m.canvas = NewCanvas(cols, rows, m.opts.Scale)
	m.reset(m.canvas.Viewport())
}

func (m *Model) mouse(msg tea.MouseMsg) {
	x, y, inside := m.toWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if inside && msg.Button == tea.MouseButtonLeft {
			m.world.Press()
		}
	case tea.MouseActionRelease:
		m.world.Release()
	}
	if inside {
		m.world.SetPointer(x, y)
	}
}

// toWorld maps a terminal cell to the world point under the centre of that
// cell.
func (m *Model) toWorld(col, row int) (float64, float64, bool) {
	cx, cy := col-canvasPadX, row-canvasPadY
	if cx < 0 || cy < 0 || cx >= m.canvas.Width || cy >= m.canvas.Height {
		return 0, 0, false
	}
	dotX, dotY := cx*2+1, cy*4+2
	return float64(dotX) * m.opts.Scale, float64(dotY) * m.opts.Scale, true
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder(physics.Color(m.theme.Background), m.world.Palette())
		return
	}
	if err := m.recorder.Save(m.opts.GIFPath); err != nil {
		log.Printf("save recording: %v", err)
	} else {
		log.Printf("saved %d frames to %s", m.recorder.Len(), m.opts.GIFPath)
	}
	m.recorder = nil
}

func (m Model) View() string {
	st := m.theme.styles()
	canvasView := st.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.opts.Title)) + "\n")

	status := st.running.Render("RUNNING")
	if !m.running {
		status = st.paused.Render("PAUSED")
	}
	if m.recorder != nil {
		status += "  " + st.record.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	}
	s.WriteString(status + "\n")

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(chartWidth), asciigraph.Caption("Kinetic energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
	} else {
		s.WriteString("\n")
	}

	energy := 0.0
	if len(m.energy) > 0 {
		energy = m.energy[len(m.energy)-1]
	}
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.world.Frame()))
	row("Bodies", fmt.Sprintf("%d", m.world.Len()))
	row("Viewport", fmt.Sprintf("%.0f x %.0f", m.world.Width(), m.world.Height()))
	row("Energy", fmt.Sprintf("%.2f", energy))
	row("Collisions", fmt.Sprintf("%d", m.last.Collisions))
	row("Wall hits", fmt.Sprintf("%d", m.last.WallHits))
	if p := m.world.Pointer(); p.Known {
		row("Pointer", fmt.Sprintf("%.0f, %.0f  1/%g", p.X, p.Y, m.world.PushFactor()))
	} else {
		row("Pointer", "-")
	}
	s.WriteString(Sparkline(m.collisions, chartWidth, st.selected) + "\n")
	s.WriteString(Separator(panelWidth-4, st.help) + "\n")

	if m.showHelp {
		s.WriteString(st.help.Render(helpText))
	} else {
		s.WriteString(st.help.Render("SP:Pause R:Reset T:Theme\nG:Record ?:Help  Q:Quit"))
	}

	panel := st.panel.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

// Run shows m on the alternate screen with mouse motion tracking.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
