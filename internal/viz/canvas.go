package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/particlesim/internal/physics"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille dot grid that doubles as a world.Renderer. Each dot
// covers Scale world units on both axes, and each cell carries the colour of
// the last body drawn into it.
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
	Colors        [][]physics.Color
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Scale:  scale,
		Grid:   make([][]rune, h),
		Colors: make([][]physics.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]physics.Color, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// CanvasFor sizes a canvas so that its dots cover a width x height viewport.
func CanvasFor(width, height, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	cols := int(math.Ceil(width / scale / 2))
	rows := int(math.Ceil(height / scale / 4))
	return NewCanvas(cols, rows, scale)
}

// Dots returns the canvas size in sub-pixel dots.
func (c *Canvas) Dots() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Viewport returns the world size the canvas covers.
func (c *Canvas) Viewport() (float64, float64) {
	w, h := c.Dots()
	return float64(w) * c.Scale, float64(h) * c.Scale
}

// Set sets a dot at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int, col physics.Color) {
	if x < 0 || y < 0 {
		return
	}

	cellX := x / 2
	cellY := y / 4
	if cellX >= c.Width || cellY >= c.Height {
		return
	}

	c.Grid[cellY][cellX] |= rune(pixelMap[y%4][x%2])
	c.Colors[cellY][cellX] = col
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Reset() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// Clear implements world.Renderer. The canvas keeps its own size.
func (c *Canvas) Clear(width, height float64) { c.Reset() }

// FillCircle implements world.Renderer. A body always lights at least the dot
// under its centre, however small it is at this scale.
func (c *Canvas) FillCircle(x, y, radius float64, col physics.Color) {
	cx, cy, r := x/c.Scale, y/c.Scale, radius/c.Scale

	c.Set(int(math.Floor(cx)), int(math.Floor(cy)), col)

	w, h := c.Dots()
	minX, maxX := clampDot(math.Floor(cx-r), w), clampDot(math.Ceil(cx+r), w)
	minY, maxY := clampDot(math.Floor(cy-r), h), clampDot(math.Ceil(cy+r), h)
	r2 := r * r
	for dy := minY; dy <= maxY; dy++ {
		for dx := minX; dx <= maxX; dx++ {
			ox := float64(dx) + 0.5 - cx
			oy := float64(dy) + 0.5 - cy
			if ox*ox+oy*oy <= r2 {
				c.Set(dx, dy, col)
			}
		}
	}
}

// clampDot limits a dot coordinate to [-1, n]. Both ends fall outside the
// canvas, so clipping never changes which dots are lit.
func clampDot(v float64, n int) int {
	if !(v > -1) {
		return -1
	}
	if v > float64(n) {
		return n
	}
	return int(v)
}

// String renders the grid with every lit cell in its body colour.
func (c *Canvas) String() string {
	styles := make(map[physics.Color]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			col := c.Colors[i][j]
			if r == blank || col == "" {
				b.WriteRune(r)
				continue
			}
			st, ok := styles[col]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(col))
				styles[col] = st
			}
			b.WriteString(st.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Plain renders the grid without colour.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
