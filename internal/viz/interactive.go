package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/world"
)

var presetInfo = map[string]string{
	"default":    "400 bodies, page sized",
	"sparse":     "few bodies, long flights",
	"crowd":      "dense, constant contact",
	"fullscreen": "wide viewport",
	"pinball":    "a dozen bodies, seeded",
	"cramped":    "bodies wider than the box",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

var fieldNames = []string{"bodies", "seed", "scale", "fps"}

// App lets the user pick a preset, tweak it and then hands over to a live
// Model.
type App struct {
	state, cursor int
	presets       []string
	cfg           *config.Config
	field         int
	editing       bool
	editBuf       string
	err           error
	width, height int
	live          Model
}

// NewApp starts from the given configuration; a chosen preset replaces its
// population settings but keeps the theme.
func NewApp(base *config.Config) *App {
	if base == nil {
		base = config.DefaultConfig()
	}
	return &App{
		state:   stateMenu,
		presets: config.ListPresets(),
		cfg:     base,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	if a.state == stateSim {
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	}
	next, cmd := a.live.Update(msg)
	a.live = next.(Model)
	return a, cmd
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		theme := a.cfg.Theme
		if p := config.GetPreset(a.presets[a.cursor]); p != nil {
			p.Theme = theme
			a.cfg = p
		}
		a.state, a.field, a.err = stateConfig, 0, nil
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			a.err = a.setField(fieldNames[a.field], a.editBuf)
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-") {
				a.editBuf += s
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.field > 0 {
			a.field--
		}
	case "down", "j":
		if a.field < len(fieldNames)-1 {
			a.field++
		}
	case "enter", " ":
		a.editing, a.editBuf = true, a.fieldValue(fieldNames[a.field])
	case "s":
		cmd, err := a.start()
		a.err = err
		return a, cmd
	}
	return a, nil
}

func (a *App) fieldValue(name string) string {
	switch name {
	case "bodies":
		return strconv.Itoa(a.cfg.Bodies)
	case "seed":
		return strconv.FormatInt(a.cfg.Seed, 10)
	case "scale":
		return strconv.FormatFloat(a.cfg.Scale, 'g', -1, 64)
	case "fps":
		return strconv.Itoa(a.cfg.FPS)
	}
	return ""
}

func (a *App) setField(name, value string) error {
	var err error
	switch name {
	case "bodies":
		a.cfg.Bodies, err = strconv.Atoi(value)
	case "seed":
		a.cfg.Seed, err = strconv.ParseInt(value, 10, 64)
	case "scale":
		a.cfg.Scale, err = strconv.ParseFloat(value, 64)
	case "fps":
		a.cfg.FPS, err = strconv.Atoi(value)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return a.cfg.Validate()
}

func (a *App) start() (tea.Cmd, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	w, err := world.New(a.cfg.Width, a.cfg.Height, a.cfg.WorldOptions()...)
	if err != nil {
		return nil, err
	}
	a.live = NewModel(w, Options{
		Title: a.presets[a.cursor],
		Scale: a.cfg.Scale,
		FPS:   a.cfg.FPS,
		Theme: a.cfg.Theme,
	})
	if a.width > 0 && a.height > 0 {
		a.live.resize(a.width, a.height)
	}
	a.state = stateSim
	return a.live.Init(), nil
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	}
	return a.live.View()
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4757"))
)

func keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(keyStyle.Render(pairs[i]) + idleStyle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("PARTICLESIM") + "\n    " + subStyle.Render("elastic collisions in a box") + "\n    " + subStyle.Render("─────────────────────────") + "\n\n")
	for i, name := range a.presets {
		desc := presetInfo[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-12s", name)), descStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", idleStyle.Render(fmt.Sprintf("  %-12s", name)), dimStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + keyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewConfig() string {
	var b strings.Builder
	name := a.presets[a.cursor]
	b.WriteString("\n\n    " + titleStyle.Render(strings.ToUpper(name)) + "\n    " + subStyle.Render(presetInfo[name]) + "\n    " + subStyle.Render("─────────────────────────") + "\n\n")
	for i, field := range fieldNames {
		val := fmt.Sprintf("%10s", a.fieldValue(field))
		if a.editing && i == a.field {
			val = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		if i == a.field {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-8s", field)), descStyle.Bold(true).Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idleStyle.Render(fmt.Sprintf("  %-8s", field)), dimStyle.Render(val)))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + errStyle.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + keyHints("j/k", "select", "enter", "edit", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// RunInteractive opens the preset picker.
func RunInteractive(base *config.Config) error {
	return Run(NewApp(base))
}
