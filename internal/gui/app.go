package gui

import (
	"fmt"
	"log"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/particlesim/internal/audio"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/world"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

type App struct {
	World    *world.World
	Screen   *Screen
	Cfg      *config.Config
	Running  bool
	InMenu   bool
	Presets  []string
	Preset   string
	Selected int
	ShowHUD  bool

	Last       world.FrameStats
	Collisions []float64 // ring buffer for the HUD graph
	MaxHistory int

	// Audio is nil unless sound was requested and the device opened.
	Audio  *audio.Synth
	player *audio.Player
}

// initWindow opens a resizable window of the configured viewport size.
func initWindow(cfg *config.Config, title string) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// NewApp builds the world for cfg. With interactive set the app opens on the
// preset menu instead of running straight away.
func NewApp(cfg *config.Config, interactive bool) (*App, error) {
	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		return nil, err
	}
	return &App{
		World:      w,
		Screen:     NewScreen(ColBg),
		Cfg:        cfg,
		Running:    !interactive,
		InMenu:     interactive,
		Presets:    config.ListPresets(),
		ShowHUD:    true,
		MaxHistory: 200,
		Collisions: make([]float64, 0, 200),
	}, nil
}

// Run opens a window and blocks until it is closed. With sound set the world
// is also sonified; a missing audio device is logged and otherwise ignored.
func Run(cfg *config.Config, interactive, sound bool) error {
	initWindow(cfg, "particlesim")
	defer rl.CloseWindow()

	app, err := NewApp(cfg, interactive)
	if err != nil {
		return err
	}
	if sound {
		app.startAudio()
		defer app.stopAudio()
	}
	app.RunLoop()
	return nil
}

func (a *App) startAudio() {
	synth := audio.NewSynth()
	player, err := audio.Start(synth)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return
	}
	a.Audio, a.player = synth, player
}

func (a *App) stopAudio() {
	if err := a.player.Stop(); err != nil {
		log.Printf("audio: %v", err)
	}
}

func meanSpeed(w *world.World) float64 {
	bodies := w.Bodies()
	if len(bodies) == 0 {
		return 0
	}
	sum := 0.0
	for i := range bodies {
		sum += bodies[i].Speed()
	}
	return sum / float64(len(bodies))
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) loadPreset(name string) {
	p := config.GetPreset(name)
	if p == nil {
		return
	}
	p.Theme, p.FPS, p.Palette = a.Cfg.Theme, a.Cfg.FPS, a.Cfg.Palette
	w, err := world.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), p.WorldOptions()...)
	if err != nil {
		log.Printf("load preset %s: %v", name, err)
		return
	}
	a.World, a.Cfg, a.Preset = w, p, name
	a.Collisions = a.Collisions[:0]
	a.Running, a.InMenu = true, false
}

// Update applies input for this frame. It returns false once the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	if a.InMenu {
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
			a.Selected = (a.Selected + 1) % len(a.Presets)
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
			a.Selected--
			if a.Selected < 0 {
				a.Selected = len(a.Presets) - 1
			}
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			a.loadPreset(a.Presets[a.Selected])
		}
		return true
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu, a.Running = true, false
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.World.Reinitialize(a.World.Width(), a.World.Height())
		a.Collisions = a.Collisions[:0]
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if rl.IsWindowResized() {
		a.World.Reinitialize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		a.Collisions = a.Collisions[:0]
	}

	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		a.World.SetPointer(float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.World.Press()
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.World.Release()
	}
	return true
}

// Draw issues one frame. Stepping happens inside the drawing pass because
// the world draws each body as soon as it has moved.
func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if a.InMenu {
		a.drawMenu()
		return
	}

	if a.Running {
		a.Last = a.World.Step(a.Screen)
		a.Collisions = append(a.Collisions, float64(a.Last.Collisions))
		if len(a.Collisions) > a.MaxHistory {
			a.Collisions = a.Collisions[1:]
		}
		if a.Audio != nil {
			a.Audio.Update(meanSpeed(a.World), a.Last.Collisions)
		}
	} else {
		a.Screen.Redraw(a.World)
	}

	if a.ShowHUD {
		a.drawHUD()
	}
}

func (a *App) drawMenu() {
	rl.ClearBackground(ColBg)
	x, y := int32(40), int32(40)
	rl.DrawText("PARTICLESIM", x, y, 28, ColSelect)
	rl.DrawText("select a preset", x, y+34, 16, ColText)
	for i, name := range a.Presets {
		col, prefix := ColTextDim, "  "
		if i == a.Selected {
			col, prefix = ColSelect, "> "
		}
		rl.DrawText(prefix+name, x, y+70+int32(i)*24, 20, col)
	}
	rl.DrawText("j/k navigate   enter select   q quit", x, y+80+int32(len(a.Presets))*24, 14, ColTextDim)
}

func (a *App) drawHUD() {
	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	if a.Preset != "" {
		status += "  " + a.Preset
	}
	lines := []string{
		status,
		fmt.Sprintf("frame %d", a.World.Frame()),
		fmt.Sprintf("bodies %d", a.World.Len()),
		fmt.Sprintf("energy %.2f", a.World.KineticEnergy()),
		fmt.Sprintf("collisions %d", a.Last.Collisions),
		fmt.Sprintf("push 1/%g", a.World.PushFactor()),
	}
	if a.Audio != nil {
		bars := min(int(a.Audio.Level()*200), 20)
		lines = append(lines, "sound "+strings.Repeat("|", bars))
	}
	for i, line := range lines {
		rl.DrawText(line, 10, 10+int32(i)*18, 16, ColAccent)
	}
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	a.drawGraph(10, 10+int32(len(lines))*18+6, 160, 40)
	rl.DrawText("space pause  r reset  h hud  esc menu  q quit", 10, int32(rl.GetScreenHeight())-22, 14, ColTextDim)

	if p := a.World.Pointer(); p.Known && a.World.Pressed() {
		rl.DrawCircleLines(int32(p.X), int32(p.Y), pushRadius, ColTextDim)
	}
}

// drawGraph plots the recent collision counts as a line strip.
func (a *App) drawGraph(x, y, w, h int32) {
	rl.DrawRectangleLines(x, y, w, h, ColTextDim)
	n := len(a.Collisions)
	if n < 2 {
		return
	}
	peak := 1.0
	for _, v := range a.Collisions {
		peak = max(peak, v)
	}
	step := float32(w) / float32(a.MaxHistory-1)
	for i := 1; i < n; i++ {
		x0 := float32(x) + float32(i-1)*step
		x1 := float32(x) + float32(i)*step
		y0 := float32(y+h) - float32(a.Collisions[i-1]/peak)*float32(h)
		y1 := float32(y+h) - float32(a.Collisions[i]/peak)*float32(h)
		rl.DrawLineV(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), ColAccent)
	}
}
