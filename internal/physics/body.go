package physics

import "math"

// Body is a circular particle. Radius and Mass are fixed at construction.
type Body struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Mass   float64
	Color  Color
}

// NewBody returns a body whose mass is derived from its radius.
func NewBody(x, y, dx, dy, radius float64, c Color) Body {
	return Body{
		X:      x,
		Y:      y,
		DX:     dx,
		DY:     dy,
		Radius: radius,
		Mass:   MassFor(radius),
		Color:  c,
	}
}

// MassFor is 1 + radius/10, so larger bodies are heavier and mass is never below 1
// for a positive radius.
func MassFor(radius float64) float64 {
	return 1 + radius/10
}

func (b *Body) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.DX*b.DX + b.DY*b.DY)
}

// IsFinite reports whether position and velocity are free of NaN and Inf.
func (b *Body) IsFinite() bool {
	for _, v := range [...]float64{b.X, b.Y, b.DX, b.DY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Integrate advances the position by one frame of velocity.
func (b *Body) Integrate() {
	b.X += b.DX
	b.Y += b.DY
}
