package physics

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func TestOverlapping(t *testing.T) {
	a := NewBody(100, 100, 0, 0, 10, "")
	b := NewBody(118, 100, 0, 0, 10, "")
	if !Overlapping(&a, &b) {
		t.Error("expected overlap at distance 18 with radii 10+10")
	}

	b.X = 120
	if Overlapping(&a, &b) {
		t.Error("bodies exactly touching should not count as overlapping")
	}
}

func TestResolveCollisionHeadOnSwap(t *testing.T) {
	a := NewBody(100, 100, 1, 0, 10, "")
	b := NewBody(118, 100, -1, 0, 10, "")

	if !ResolveCollision(&a, &b) {
		t.Fatal("expected collision to resolve")
	}

	if a.DX != -1 || a.DY != 0 {
		t.Errorf("a velocity = (%v, %v), want (-1, 0)", a.DX, a.DY)
	}
	if b.DX != 1 || b.DY != 0 {
		t.Errorf("b velocity = (%v, %v), want (1, 0)", b.DX, b.DY)
	}
}

func TestResolveCollisionEqualMassSwapsNormalComponent(t *testing.T) {
	// line of centers at 45 degrees, tangential components must survive
	a := NewBody(0, 0, 2, 0.5, 5, "")
	b := NewBody(5, 5, -1, 1, 5, "")

	ResolveCollision(&a, &b)

	n := 1 / math.Sqrt2
	normal := func(dx, dy float64) float64 { return dx*n + dy*n }
	tangent := func(dx, dy float64) float64 { return -dx*n + dy*n }

	if !near(normal(a.DX, a.DY), normal(-1, 1)) || !near(normal(b.DX, b.DY), normal(2, 0.5)) {
		t.Errorf("normal components not swapped: a=(%v,%v) b=(%v,%v)", a.DX, a.DY, b.DX, b.DY)
	}
	if !near(tangent(a.DX, a.DY), tangent(2, 0.5)) || !near(tangent(b.DX, b.DY), tangent(-1, 1)) {
		t.Errorf("tangential components changed: a=(%v,%v) b=(%v,%v)", a.DX, a.DY, b.DX, b.DY)
	}
}

func TestResolveCollisionSeparatingIsNoop(t *testing.T) {
	a := NewBody(100, 100, -1, 0, 10, "")
	b := NewBody(118, 100, 1, 0, 10, "")

	if ResolveCollision(&a, &b) {
		t.Error("separating bodies should not be resolved")
	}
	if a.DX != -1 || b.DX != 1 {
		t.Errorf("velocities changed: a=%v b=%v", a.DX, b.DX)
	}
}

func TestResolveCollisionSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
	}{
		{"unequal masses oblique", NewBody(10, 10, 1.5, -0.2, 4, ""), NewBody(16, 13, -0.4, -0.9, 9, "")},
		{"vertical", NewBody(0, 0, 0, 2, 20, ""), NewBody(0, 30, 0.3, -1, 12, "")},
		{"one at rest", NewBody(50, 50, 2, 2, 3, ""), NewBody(54, 53, 0, 0, 18, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, b1 := tt.a, tt.b
			ResolveCollision(&a1, &b1)

			a2, b2 := tt.a, tt.b
			ResolveCollision(&b2, &a2)

			if !near(a1.DX, a2.DX) || !near(a1.DY, a2.DY) || !near(b1.DX, b2.DX) || !near(b1.DY, b2.DY) {
				t.Errorf("(A,B) gave a=(%v,%v) b=(%v,%v); (B,A) gave a=(%v,%v) b=(%v,%v)",
					a1.DX, a1.DY, b1.DX, b1.DY, a2.DX, a2.DY, b2.DX, b2.DY)
			}
		})
	}
}

func TestResolveCollisionConservesMomentumAndEnergy(t *testing.T) {
	a := NewBody(10, 10, 1.5, -0.2, 4, "")
	b := NewBody(16, 13, -0.4, -0.9, 9, "")

	px := a.Mass*a.DX + b.Mass*b.DX
	py := a.Mass*a.DY + b.Mass*b.DY
	ke := a.KineticEnergy() + b.KineticEnergy()

	if !ResolveCollision(&a, &b) {
		t.Fatal("expected collision to resolve")
	}

	if !near(px, a.Mass*a.DX+b.Mass*b.DX) || !near(py, a.Mass*a.DY+b.Mass*b.DY) {
		t.Error("momentum not conserved")
	}
	if !near(ke, a.KineticEnergy()+b.KineticEnergy()) {
		t.Error("kinetic energy not conserved")
	}
}

func TestResolveCollisionLeavesPositions(t *testing.T) {
	a := NewBody(100, 100, 1, 0, 10, "")
	b := NewBody(105, 100, -1, 0, 10, "")

	ResolveCollision(&a, &b)

	if a.X != 100 || b.X != 105 {
		t.Errorf("positions moved: a.X=%v b.X=%v", a.X, b.X)
	}
}
