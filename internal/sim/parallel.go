package sim

import (
	"context"

	"github.com/san-kum/particlesim/internal/world"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent worlds, one per seed, concurrently. Each run owns
// its world and metrics, so nothing is shared between goroutines.
type Ensemble struct {
	build     func(seed int64) (*world.World, error)
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

// NewEnsemble prepares numRuns runs seeded seedStart, seedStart+1, ...
// newMetrics is called once per run and may be nil.
func NewEnsemble(build func(seed int64) (*world.World, error), newMetrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, metrics: newMetrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			w, err := e.build(e.seedStart + int64(idx))
			if err != nil {
				return err
			}

			r := New(w, nil)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					r.AddMetric(m)
				}
			}

			res, err := r.Run(ctx, cfg)
			results[idx] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
