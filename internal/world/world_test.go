package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

type circle struct {
	x, y, r float64
	c       physics.Color
}

type recorder struct {
	clears  int
	circles []circle
}

func (r *recorder) Clear(width, height float64) {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, c physics.Color) {
	r.circles = append(r.circles, circle{x, y, radius, c})
}

// referenceStep applies the per-body rules in place, one body at a time.
func referenceStep(bodies []physics.Body, width, height float64, p physics.Pointer, push float64) {
	for i := range bodies {
		physics.ApplyPointer(&bodies[i], p, push)
		physics.ApplyBoundary(&bodies[i], width, height)
		for j := range bodies {
			if i != j && physics.Overlapping(&bodies[i], &bodies[j]) {
				physics.ResolveCollision(&bodies[i], &bodies[j])
			}
		}
		bodies[i].Integrate()
	}
}

var _ = Describe("World", func() {
	Describe("New", func() {
		It("rejects a negative population", func() {
			_, err := world.New(100, 100, world.WithBodies(-1))
			Expect(err).To(MatchError(world.ErrInvalidBodyCount))
		})

		It("rejects an empty palette", func() {
			_, err := world.New(100, 100, world.WithPalette(nil))
			Expect(err).To(MatchError(world.ErrEmptyPalette))
		})

		It("spawns the default population", func() {
			w, err := world.New(960, 360, world.WithSeed(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Len()).To(Equal(world.DefaultBodies))
			Expect(w.Width()).To(Equal(960.0))
			Expect(w.Height()).To(Equal(360.0))
			Expect(w.Pointer().Known).To(BeFalse())
		})
	})

	Describe("Reinitialize", func() {
		It("discards the bodies and respawns inside the new bounds", func() {
			w, err := world.New(960, 360, world.WithBodies(40), world.WithSeed(3))
			Expect(err).NotTo(HaveOccurred())
			w.Step(nil)
			before := append([]physics.Body(nil), w.Bodies()...)

			w.Reinitialize(200, 120)

			Expect(w.Len()).To(Equal(40))
			Expect(w.Frame()).To(Equal(0))
			Expect(w.Bodies()).NotTo(Equal(before))
			for _, b := range w.Bodies() {
				Expect(b.X).To(BeNumerically("<=", 200-b.Radius))
				Expect(b.Y).To(BeNumerically("<=", 120-b.Radius))
			}
		})

		It("keeps the input state", func() {
			w, _ := world.New(100, 100, world.WithBodies(1))
			w.SetPointer(10, 20)
			w.Press()
			w.Reinitialize(300, 300)
			Expect(w.Pointer()).To(Equal(physics.Pointer{X: 10, Y: 20, Known: true}))
			Expect(w.PushFactor()).To(Equal(physics.PushFactorPressed))
		})
	})

	Describe("input", func() {
		It("toggles the push factor with press state", func() {
			w, _ := world.New(100, 100, world.WithBodies(0))
			Expect(w.PushFactor()).To(Equal(physics.PushFactorIdle))
			w.Press()
			Expect(w.Pressed()).To(BeTrue())
			Expect(w.PushFactor()).To(Equal(physics.PushFactorPressed))
			w.Release()
			Expect(w.PushFactor()).To(Equal(physics.PushFactorIdle))
		})

		It("forgets the pointer", func() {
			w, _ := world.New(100, 100, world.WithBodies(0))
			w.SetPointer(1, 1)
			w.ClearPointer()
			Expect(w.Pointer().Known).To(BeFalse())
		})
	})

	Describe("Step", func() {
		It("swaps velocities of two equal bodies meeting head on", func() {
			w, _ := world.New(1000, 1000, world.WithBodySet([]physics.Body{
				physics.NewBody(100, 100, 1, 0, 10, "#ffaa33"),
				physics.NewBody(118, 100, -1, 0, 10, "#99ffaa"),
			}))

			stats := w.Step(nil)

			Expect(stats.Collisions).To(Equal(1))
			a, b := w.Bodies()[0], w.Bodies()[1]
			Expect([]float64{a.DX, a.DY}).To(Equal([]float64{-1, 0}))
			Expect([]float64{b.DX, b.DY}).To(Equal([]float64{1, 0}))
			Expect(a.X).To(Equal(99.0))
			Expect(b.X).To(Equal(119.0))
		})

		It("leaves velocities alone without a pointer, walls or contacts", func() {
			set := []physics.Body{
				physics.NewBody(100, 100, 0.25, -0.5, 5, ""),
				physics.NewBody(300, 300, -0.5, 0.25, 8, ""),
				physics.NewBody(500, 100, 0.125, 0.125, 12, ""),
			}
			w, _ := world.New(1000, 1000, world.WithBodySet(set))

			for i := 0; i < 20; i++ {
				stats := w.Step(nil)
				Expect(stats.PointerHits).To(BeZero())
			}
			for i, b := range w.Bodies() {
				Expect(b.DX).To(Equal(set[i].DX))
				Expect(b.DY).To(Equal(set[i].DY))
			}
		})

		It("pushes a nearby body away from the pointer", func() {
			w, _ := world.New(1000, 1000, world.WithBodySet([]physics.Body{
				physics.NewBody(500, 500, 0, 0, 5, ""),
			}))
			w.SetPointer(510, 495)

			stats := w.Step(nil)

			Expect(stats.PointerHits).To(Equal(1))
			b := w.Bodies()[0]
			Expect(b.DX).To(BeNumerically("~", -1.0, 1e-12))
			Expect(b.DY).To(BeNumerically("~", 0.5, 1e-12))

			w.Press()
			w.Step(nil)
			b = w.Bodies()[0]
			Expect(b.DX).To(BeNumerically("~", -1.0-(510-499.0)/5, 1e-12))
		})

		It("reflects a body off the right wall", func() {
			w, _ := world.New(200, 100, world.WithBodySet([]physics.Body{
				physics.NewBody(197, 50, 2, 0, 5, ""),
			}))

			stats := w.Step(nil)

			Expect(stats.WallHits).To(Equal(1))
			b := w.Bodies()[0]
			Expect(b.DX).To(Equal(-1.0))
			Expect(b.X).To(Equal(194.0))
		})

		It("matches a sequential in-place pass over a crowded population", func() {
			w, _ := world.New(300, 200, world.WithBodies(120), world.WithSeed(11))
			w.SetPointer(150, 100)
			ref := append([]physics.Body(nil), w.Bodies()...)

			for frame := 0; frame < 30; frame++ {
				w.Step(nil)
				referenceStep(ref, 300, 200, w.Pointer(), w.PushFactor())
			}

			Expect(w.Bodies()).To(Equal(ref))
		})

		It("clears once and draws every body after it moves", func() {
			w, _ := world.New(640, 480, world.WithBodies(25), world.WithSeed(5))
			r := &recorder{}

			stats := w.Step(r)

			Expect(stats.Frame).To(Equal(1))
			Expect(r.clears).To(Equal(1))
			Expect(r.circles).To(HaveLen(25))
			for i, b := range w.Bodies() {
				Expect(r.circles[i]).To(Equal(circle{b.X, b.Y, b.Radius, b.Color}))
			}
		})

		It("keeps every body finite over a long run", func() {
			w, _ := world.New(400, 250, world.WithBodies(150), world.WithSeed(9))
			w.SetPointer(200, 125)
			for frame := 0; frame < 300; frame++ {
				if frame%50 == 0 {
					w.Press()
				} else if frame%50 == 25 {
					w.Release()
				}
				w.Step(nil)
			}
			for _, b := range w.Bodies() {
				Expect(b.IsFinite()).To(BeTrue())
			}
			Expect(w.Frame()).To(Equal(300))
		})

		It("keeps radius and mass fixed", func() {
			w, _ := world.New(300, 300, world.WithBodies(60), world.WithSeed(2))
			before := append([]physics.Body(nil), w.Bodies()...)
			for i := 0; i < 50; i++ {
				w.Step(nil)
			}
			for i, b := range w.Bodies() {
				Expect(b.Radius).To(Equal(before[i].Radius))
				Expect(b.Mass).To(Equal(before[i].Mass))
				Expect(b.Color).To(Equal(before[i].Color))
			}
		})
	})
})
