package physics

const (
	// Friction scales the reflected velocity on every wall contact.
	Friction = 0.5

	// Gravity is defined but not applied; bodies float.
	Gravity = 0.9
)

// Wall is a set of viewport edges.
type Wall uint8

const (
	WallRight Wall = 1 << iota
	WallLeft
	WallBottom
	WallTop
)

// Has reports whether w contains edge.
func (w Wall) Has(edge Wall) bool {
	return w&edge != 0
}

// ApplyBoundary reflects b off any viewport edge it penetrates while moving
// outward. Edges are tested right, left, bottom, top; each test sees the writes
// of the ones before it. It returns the edges that fired.
func ApplyBoundary(b *Body, width, height float64) Wall {
	var hit Wall

	if b.X+b.Radius > width && b.DX >= 0 {
		b.DX = -b.DX * Friction
		b.X = width - b.Radius
		hit |= WallRight
	}

	if b.X-b.Radius < 0 && b.DX <= 0 {
		b.DX = -b.DX * Friction
		b.X = b.Radius
		hit |= WallLeft
	}

	if b.Y+b.Radius > height && b.DY >= 0 {
		b.DY = -b.DY * Friction
		b.Y = height - b.Radius
		// floor drag
		b.DX *= Friction
		hit |= WallBottom
	}

	if b.Y-b.Radius < 0 && b.DY <= 0 {
		b.DY = -b.DY * Friction
		b.Y = b.Radius
		hit |= WallTop
	}

	return hit
}
