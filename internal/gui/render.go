package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

const pushRadius = float32(physics.PushRadius)

// Screen is a world.Renderer that draws straight into the current raylib
// frame. It must only be used between BeginDrawing and EndDrawing.
type Screen struct {
	background rl.Color
	colors     map[physics.Color]rl.Color
}

func NewScreen(background rl.Color) *Screen {
	return &Screen{background: background, colors: make(map[physics.Color]rl.Color)}
}

func (s *Screen) Clear(width, height float64) {
	rl.ClearBackground(s.background)
}

func (s *Screen) FillCircle(x, y, radius float64, c physics.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), s.color(c))
}

// Redraw paints the current bodies without stepping, for paused frames.
func (s *Screen) Redraw(w *world.World) {
	s.Clear(w.Width(), w.Height())
	for _, b := range w.Bodies() {
		s.FillCircle(b.X, b.Y, b.Radius, b.Color)
	}
}

func (s *Screen) color(c physics.Color) rl.Color {
	if col, ok := s.colors[c]; ok {
		return col
	}
	r, g, b := c.RGB()
	col := rl.NewColor(r, g, b, 255)
	s.colors[c] = col
	return col
}
