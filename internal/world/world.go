package world

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/particlesim/internal/physics"
)

// DefaultBodies is the population a world spawns unless told otherwise.
const DefaultBodies = 400

// FrameStats counts what happened during one Step.
type FrameStats struct {
	Frame       int
	Collisions  int
	WallHits    int
	PointerHits int
}

type World struct {
	bodies  []physics.Body
	width   float64
	height  float64
	pointer physics.Pointer
	pressed bool
	frame   int

	count   int
	palette []physics.Color
	rng     *rand.Rand
}

type Option func(*World)

func WithBodies(n int) Option {
	return func(w *World) { w.count = n }
}

func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewSource(seed)) }
}

func WithPalette(p []physics.Color) Option {
	return func(w *World) { w.palette = p }
}

// WithBodySet starts the world from the given bodies instead of a random
// population. Reinitialize still respawns randomly, with len(bodies) bodies.
func WithBodySet(bodies []physics.Body) Option {
	return func(w *World) {
		w.bodies = append([]physics.Body(nil), bodies...)
		w.count = len(bodies)
	}
}

// New builds a world of the given size and populates it.
func New(width, height float64, opts ...Option) (*World, error) {
	w := &World{
		count:   DefaultBodies,
		palette: physics.DefaultPalette,
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodyCount, w.count)
	}
	if len(w.palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if w.bodies == nil {
		w.Reinitialize(width, height)
	} else {
		w.width, w.height = width, height
	}
	return w, nil
}

// Reinitialize discards every body and spawns a fresh population sized to the
// new viewport. Input state survives.
func (w *World) Reinitialize(width, height float64) {
	w.width = width
	w.height = height
	w.frame = 0
	w.bodies = Spawn(w.rng, w.count, width, height, w.palette)
}

func (w *World) SetPointer(x, y float64) {
	w.pointer = physics.Pointer{X: x, Y: y, Known: true}
}

// ClearPointer forgets the pointer, e.g. when it leaves the viewport.
func (w *World) ClearPointer() {
	w.pointer = physics.Pointer{}
}

func (w *World) Press()   { w.pressed = true }
func (w *World) Release() { w.pressed = false }

func (w *World) Pressed() bool            { return w.pressed }
func (w *World) Pointer() physics.Pointer { return w.pointer }

// PushFactor is the divisor applied to the pointer impulse; pressing halves it.
func (w *World) PushFactor() float64 {
	if w.pressed {
		return physics.PushFactorPressed
	}
	return physics.PushFactorIdle
}

// Step advances every body by one frame and issues its draw call to r, which
// may be nil. Bodies are processed in order and collisions mutate both
// participants at once, so a body can collide with partners that have and have
// not yet moved this frame.
func (w *World) Step(r Renderer) FrameStats {
	w.frame++
	stats := FrameStats{Frame: w.frame}

	if r != nil {
		r.Clear(w.width, w.height)
	}

	push := w.PushFactor()
	for i := range w.bodies {
		b := &w.bodies[i]

		if physics.ApplyPointer(b, w.pointer, push) {
			stats.PointerHits++
		}

		if physics.ApplyBoundary(b, w.width, w.height) != 0 {
			stats.WallHits++
		}

		for j := range w.bodies {
			if i == j {
				continue
			}
			other := &w.bodies[j]
			if physics.Overlapping(b, other) && physics.ResolveCollision(b, other) {
				stats.Collisions++
			}
		}

		b.Integrate()

		if r != nil {
			r.FillCircle(b.X, b.Y, b.Radius, b.Color)
		}
	}

	return stats
}

// Bodies returns the live population. Callers must not modify it.
func (w *World) Bodies() []physics.Body { return w.bodies }

func (w *World) Len() int                 { return len(w.bodies) }
func (w *World) Width() float64           { return w.width }
func (w *World) Height() float64          { return w.height }
func (w *World) Frame() int               { return w.frame }
func (w *World) Palette() []physics.Color { return w.palette }

// KineticEnergy is the total kinetic energy of the population.
func (w *World) KineticEnergy() float64 {
	total := 0.0
	for i := range w.bodies {
		total += w.bodies[i].KineticEnergy()
	}
	return total
}
