package analysis

import (
	"context"

	"github.com/san-kum/particlesim/internal/sim"
	"github.com/san-kum/particlesim/internal/world"
)

type SweepPoint struct {
	Bodies  int
	Metrics map[string]float64
}

// SweepBodies runs one headless simulation per population size and collects
// the final metric values, so the effect of crowding can be read off one
// table.
func SweepBodies(
	ctx context.Context,
	counts []int,
	build func(count int) (*world.World, error),
	newMetrics func() []sim.Metric,
	cfg sim.Config,
) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(counts))

	for _, n := range counts {
		w, err := build(n)
		if err != nil {
			return nil, err
		}

		r := sim.New(w, nil)
		for _, m := range newMetrics() {
			r.AddMetric(m)
		}

		res, err := r.Run(ctx, cfg)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Bodies: n, Metrics: res.Metrics})
	}

	return points, nil
}

// Best returns the point with the smallest value of metric. ok is false when
// no point carries it.
func Best(points []SweepPoint, metric string) (best SweepPoint, ok bool) {
	for _, p := range points {
		v, has := p.Metrics[metric]
		if !has {
			continue
		}
		if !ok || v < best.Metrics[metric] {
			best, ok = p, true
		}
	}
	return best, ok
}

// Column extracts one metric across the sweep, in order.
func Column(points []SweepPoint, metric string) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Metrics[metric]
	}
	return out
}
