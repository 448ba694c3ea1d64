package physics

import "math"

// Overlapping reports whether the two disks touch or intersect.
func Overlapping(a, b *Body) bool {
	sum := a.Radius + b.Radius
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < sum*sum
}

// ResolveCollision applies a 2D elastic collision to a and b and reports whether
// their velocities changed. Bodies that are already separating are left alone so
// residual overlap is not resolved twice.
//
// Only velocity is altered. Requires a.Mass+b.Mass > 0, which MassFor guarantees.
func ResolveCollision(a, b *Body) bool {
	xDist := b.X - a.X
	yDist := b.Y - a.Y

	if Dot(a.DX-b.DX, a.DY-b.DY, xDist, yDist) < 0 {
		return false
	}

	angle := -math.Atan2(yDist, xDist)

	m1, m2 := a.Mass, b.Mass
	total := m1 + m2

	u1x, u1y := Rotate(a.DX, a.DY, angle)
	u2x, u2y := Rotate(b.DX, b.DY, angle)

	// along the line of centers only; the tangential components pass through
	v1x := (u1x*(m1-m2) + u2x*2*m2) / total
	v2x := (u2x*(m2-m1) + u1x*2*m1) / total

	a.DX, a.DY = Rotate(v1x, u1y, -angle)
	b.DX, b.DY = Rotate(v2x, u2y, -angle)
	return true
}
