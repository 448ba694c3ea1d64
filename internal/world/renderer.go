package world

import "github.com/san-kum/particlesim/internal/physics"

// Renderer is the drawing surface a frame is issued to.
type Renderer interface {
	Clear(width, height float64)
	FillCircle(x, y, radius float64, c physics.Color)
}
