package world

import (
	"math/rand"

	"github.com/san-kum/particlesim/internal/physics"
)

const (
	MinRadius = 1.0
	MaxRadius = 21.0

	// MaxSpawnSpeed bounds each initial velocity component to [-0.5, 0.5].
	MaxSpawnSpeed = 0.5
)

// Spawn creates count bodies placed so each disk fits inside the viewport.
// Initial overlap is allowed. When the viewport is too small for a disk the
// coordinate is pinned to the middle of the viewport instead of drawn from an
// inverted range.
//
// A non-positive count yields no bodies, an empty palette draws from
// physics.DefaultPalette and a nil rng is replaced by a randomly seeded one.
func Spawn(rng *rand.Rand, count int, width, height float64, palette []physics.Color) []physics.Body {
	if count <= 0 {
		return []physics.Body{}
	}
	if len(palette) == 0 {
		palette = physics.DefaultPalette
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	bodies := make([]physics.Body, 0, count)
	for i := 0; i < count; i++ {
		radius := MinRadius + rng.Float64()*(MaxRadius-MinRadius)
		x := placeWithin(rng, radius, width)
		y := placeWithin(rng, radius, height)

		dx := (rng.Float64() - 0.5) * 2 * MaxSpawnSpeed
		dy := (rng.Float64() - 0.5) * 2 * MaxSpawnSpeed

		c := palette[rng.Intn(len(palette))]
		bodies = append(bodies, physics.NewBody(x, y, dx, dy, radius, c))
	}
	return bodies
}

// placeWithin draws a coordinate in [radius, extent-radius].
func placeWithin(rng *rand.Rand, radius, extent float64) float64 {
	span := extent - 2*radius
	if !(span > 0) {
		if extent <= 0 {
			return 0
		}
		return extent / 2
	}
	return radius + rng.Float64()*span
}
