package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/particlesim/internal/physics"
)

func litCount(c *Canvas) int {
	n := 0
	w, h := c.Dots()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Lit(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCanvasFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		scale         float64
		cols, rows    int
	}{
		{"page", 960, 360, 4, 120, 23},
		{"exact", 16, 16, 1, 8, 4},
		{"zero scale", 4, 4, 0, 2, 1},
		{"empty", 0, 0, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CanvasFor(tt.width, tt.height, tt.scale)
			if c.Width != tt.cols || c.Height != tt.rows {
				t.Errorf("expected %dx%d cells, got %dx%d", tt.cols, tt.rows, c.Width, c.Height)
			}
			vw, vh := c.Viewport()
			if vw < tt.width || vh < tt.height {
				t.Errorf("viewport %gx%g does not cover %gx%g", vw, vh, tt.width, tt.height)
			}
		})
	}
}

func TestCanvasSetAndLit(t *testing.T) {
	c := NewCanvas(2, 1, 1)
	c.Set(3, 3, "#ff1100")

	if !c.Lit(3, 3) {
		t.Fatal("expected dot to be lit")
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("expected dot 8 in cell 1, got %U", c.Grid[0][1])
	}
	if c.Colors[0][1] != "#ff1100" {
		t.Errorf("expected cell colour, got %q", c.Colors[0][1])
	}

	// out of range is ignored
	c.Set(-1, 0, "#ffffff")
	c.Set(4, 0, "#ffffff")
	c.Set(0, 4, "#ffffff")
	if litCount(c) != 1 {
		t.Errorf("expected 1 lit dot, got %d", litCount(c))
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 10, 1)
	c.FillCircle(20, 20, 5, "#00ff00")

	if !c.Lit(20, 20) {
		t.Error("expected centre dot lit")
	}
	if c.Lit(20, 27) || c.Lit(27, 20) {
		t.Error("expected dots outside the radius to stay dark")
	}
	// roughly pi*r^2
	if n := litCount(c); n < 70 || n > 90 {
		t.Errorf("expected about 78 lit dots, got %d", n)
	}
}

func TestCanvasFillCircleTinyBody(t *testing.T) {
	c := NewCanvas(10, 10, 8)
	c.FillCircle(41, 41, 1, "#ffaa33")

	if n := litCount(c); n != 1 {
		t.Errorf("expected a single dot for a sub-dot body, got %d", n)
	}
	if !c.Lit(5, 5) {
		t.Error("expected the dot under the centre to be lit")
	}
}

func TestCanvasFillCircleClipped(t *testing.T) {
	// at this scale the bounding box is billions of dots wide
	c := NewCanvas(4, 2, 1e-6)
	c.FillCircle(4e-6, 4e-6, 21, "#ffffff")

	w, h := c.Dots()
	if n := litCount(c); n != w*h {
		t.Errorf("expected all %d dots lit, got %d", w*h, n)
	}

	// a disk hanging off the top-left corner keeps its visible quarter
	c = NewCanvas(20, 10, 1)
	c.FillCircle(0, 0, 5, "#00ff00")
	if !c.Lit(0, 0) || !c.Lit(3, 2) {
		t.Error("expected the visible part of the disk lit")
	}
	if c.Lit(5, 5) {
		t.Error("expected dots outside the radius to stay dark")
	}
}

func TestClampDot(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want int
	}{
		{-1e12, 8, -1},
		{-1, 8, -1},
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 8},
		{1e12, 8, 8},
	}
	for _, tt := range tests {
		if got := clampDot(tt.v, tt.n); got != tt.want {
			t.Errorf("clampDot(%g, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4, 1)
	c.FillCircle(4, 4, 3, "#ffffff")
	c.Clear(8, 16)

	if litCount(c) != 0 {
		t.Error("expected empty canvas after clear")
	}
	for _, row := range c.Colors {
		for _, col := range row {
			if col != "" {
				t.Fatalf("expected colours cleared, got %q", col)
			}
		}
	}
}

func TestCanvasPlain(t *testing.T) {
	c := NewCanvas(3, 2, 1)
	c.Set(0, 0, physics.Color("#ffffff"))

	lines := strings.Split(strings.TrimSuffix(c.Plain(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if []rune(lines[0])[0] != blank|0x1 {
		t.Errorf("expected dot 1 in first cell, got %q", lines[0])
	}
	if lines[1] != strings.Repeat(string(rune(blank)), 3) {
		t.Errorf("expected blank second row, got %q", lines[1])
	}
}
