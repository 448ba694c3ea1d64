package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the side panel. Bodies keep their palette
// colours under every theme. Background is also the GIF backdrop.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// theme fills the status colours, which only the retro scheme tints.
func theme(name, primary, secondary, accent, background, text, muted string) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(primary),
		Secondary:  lipgloss.Color(secondary),
		Accent:     lipgloss.Color(accent),
		Background: lipgloss.Color(background),
		Text:       lipgloss.Color(text),
		Muted:      lipgloss.Color(muted),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}
}

// Themes is the cycle order of the t key. The first entry is the fallback.
var Themes = []Theme{
	theme("cyberpunk", "#ff00ff", "#00ffff", "#ffff00", "#0a0a0a", "#ffffff", "#666666"),
	retro(),
	theme("minimal", "#ffffff", "#cccccc", "#0088ff", "#000000", "#ffffff", "#888888"),
	theme("ocean", "#0077be", "#00a8cc", "#ffd700", "#001a33", "#e0f0ff", "#4488aa"),
	theme("sunset", "#ff6b6b", "#feca57", "#ff9ff3", "#2d1b2e", "#fff5f5", "#8b6b8c"),
}

func retro() Theme {
	t := theme("retro", "#00ff00", "#00cc00", "#88ff88", "#001100", "#00ff00", "#005500")
	t.Success = "#88ff88"
	t.Warning = "#ffff00"
	return t
}

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	canvas   lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	record   lipgloss.Style
	selected lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		canvas:   lipgloss.NewStyle().Padding(canvasPadY, canvasPadX),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(panelWidth),
		header:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		graph:    lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		running:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		paused:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		record:   lipgloss.NewStyle().Foreground(t.Error).Bold(true).Blink(true),
		selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}
