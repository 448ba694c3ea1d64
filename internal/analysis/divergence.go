package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

// Saturation is the separation, in world units, past which two runs are
// considered decorrelated.
const Saturation = 1.0

type DivergenceResult struct {
	Separation []float64
	// Exponent is ln(d/d0)/frames, measured at the last frame before the
	// separation saturates.
	Exponent float64
	// Frames until saturation, or len(Separation) if it never saturated.
	Frames int
}

// Divergence runs w alongside a copy whose first body is shifted by
// perturbation along x, and tracks how far the two populations drift apart.
// It is the particle analogue of a largest Lyapunov exponent: collisions
// amplify tiny offsets, so a crowded world diverges quickly. w is stepped.
func Divergence(w *world.World, perturbation float64, frames int) (*DivergenceResult, error) {
	if w.Len() == 0 {
		return nil, fmt.Errorf("divergence: world has no bodies")
	}
	if perturbation <= 0 || frames <= 0 {
		return nil, fmt.Errorf("divergence: perturbation and frames must be positive")
	}

	bodies := append([]physics.Body(nil), w.Bodies()...)
	bodies[0].X += perturbation
	twin, err := world.New(w.Width(), w.Height(), world.WithBodySet(bodies), world.WithPalette(w.Palette()))
	if err != nil {
		return nil, err
	}

	res := &DivergenceResult{Separation: make([]float64, 0, frames), Frames: frames}
	saturated := false
	for i := 0; i < frames; i++ {
		w.Step(nil)
		twin.Step(nil)

		sep := separation(w.Bodies(), twin.Bodies())
		res.Separation = append(res.Separation, sep)

		if saturated {
			continue
		}
		if sep > Saturation {
			saturated = true
			res.Frames = i
			continue
		}
		if sep > 0 {
			res.Exponent = math.Log(sep/perturbation) / float64(i+1)
		}
	}
	return res, nil
}

func separation(a, b []physics.Body) float64 {
	sum := 0.0
	for i := range a {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		sum += dx*dx + dy*dy
	}
	return math.Sqrt(sum)
}
