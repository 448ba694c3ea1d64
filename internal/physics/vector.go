package physics

import "math"

// Rotate turns the vector (dx, dy) by angle radians.
func Rotate(dx, dy, angle float64) (x, y float64) {
	sin, cos := math.Sincos(angle)
	return dx*cos - dy*sin, dx*sin + dy*cos
}

func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}
