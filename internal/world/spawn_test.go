package world_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

var _ = Describe("Spawn", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(7))
	})

	It("creates the requested number of bodies", func() {
		Expect(world.Spawn(rng, 250, 800, 400, physics.DefaultPalette)).To(HaveLen(250))
		Expect(world.Spawn(rng, 0, 800, 400, physics.DefaultPalette)).To(BeEmpty())
	})

	It("draws every attribute from its documented range", func() {
		const width, height = 640.0, 360.0
		for _, b := range world.Spawn(rng, 500, width, height, physics.DefaultPalette) {
			Expect(b.Radius).To(And(BeNumerically(">=", world.MinRadius), BeNumerically("<", world.MaxRadius)))
			Expect(b.Mass).To(Equal(physics.MassFor(b.Radius)))

			Expect(b.X).To(And(BeNumerically(">=", b.Radius), BeNumerically("<=", width-b.Radius)))
			Expect(b.Y).To(And(BeNumerically(">=", b.Radius), BeNumerically("<=", height-b.Radius)))

			Expect(b.DX).To(BeNumerically("~", 0, world.MaxSpawnSpeed))
			Expect(b.DY).To(BeNumerically("~", 0, world.MaxSpawnSpeed))

			Expect(physics.DefaultPalette).To(ContainElement(b.Color))
		}
	})

	It("pins bodies to the middle of a viewport too small to hold them", func() {
		for _, b := range world.Spawn(rng, 50, 4, 30, physics.DefaultPalette) {
			Expect(b.IsFinite()).To(BeTrue())
			if b.Radius > 2 {
				Expect(b.X).To(Equal(2.0))
			}
			if b.Radius > 15 {
				Expect(b.Y).To(Equal(15.0))
			}
		}
	})

	It("never produces non-finite or negative positions for empty viewports", func() {
		for _, size := range [][2]float64{{0, 0}, {-10, 50}, {math.SmallestNonzeroFloat64, 1}} {
			for _, b := range world.Spawn(rng, 20, size[0], size[1], physics.DefaultPalette) {
				Expect(b.IsFinite()).To(BeTrue())
				Expect(b.X).To(BeNumerically(">=", 0))
				Expect(b.Y).To(BeNumerically(">=", 0))
			}
		}
	})

	It("is reproducible for a given seed", func() {
		a := world.Spawn(rand.New(rand.NewSource(42)), 30, 500, 500, physics.DefaultPalette)
		b := world.Spawn(rand.New(rand.NewSource(42)), 30, 500, 500, physics.DefaultPalette)
		Expect(a).To(Equal(b))
	})

	It("tolerates inputs the world constructor would reject", func() {
		Expect(world.Spawn(rng, -3, 800, 400, physics.DefaultPalette)).To(BeEmpty())

		bodies := world.Spawn(rng, 10, 800, 400, nil)
		Expect(bodies).To(HaveLen(10))
		for _, b := range bodies {
			Expect(physics.DefaultPalette).To(ContainElement(b.Color))
		}

		Expect(world.Spawn(nil, 5, 800, 400, physics.DefaultPalette)).To(HaveLen(5))
	})
})
