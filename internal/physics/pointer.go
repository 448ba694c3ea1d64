package physics

import "math"

const (
	// PushRadius is the distance inside which the pointer repels a body.
	PushRadius = 50.0

	PushFactorIdle    = 10.0
	PushFactorPressed = 5.0
)

// Pointer is the last known input position. The zero value is an unknown pointer.
type Pointer struct {
	X, Y  float64
	Known bool
}

// ApplyPointer pushes b away from p when it is closer than PushRadius. A smaller
// pushFactor gives a stronger push. It reports whether an impulse was applied.
func ApplyPointer(b *Body, p Pointer, pushFactor float64) bool {
	if !p.Known {
		return false
	}

	xDiff := p.X - b.X
	yDiff := p.Y - b.Y
	if math.Hypot(xDiff, yDiff) >= PushRadius {
		return false
	}

	b.DX -= xDiff / pushFactor
	b.DY -= yDiff / pushFactor
	return true
}
