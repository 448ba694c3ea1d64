package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/particlesim/internal/world"
)

// Runner drives a world headless for a fixed number of frames.
type Runner struct {
	world     *world.World
	renderer  world.Renderer
	metrics   []Metric
	observers []Observer
}

// New returns a runner for w. The renderer may be nil.
func New(w *world.World, r world.Renderer) *Runner {
	return &Runner{
		world:     w,
		renderer:  r,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Energy:  make([]float64, 0, cfg.Frames),
		Stats:   make([]world.FrameStats, 0, cfg.Frames),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	err := r.drive(ctx, cfg, func(stats world.FrameStats) bool {
		bodies := r.world.Bodies()

		result.Frames++
		result.Collisions += stats.Collisions
		result.WallHits += stats.WallHits
		result.PointerHits += stats.PointerHits
		result.Energy = append(result.Energy, r.world.KineticEnergy())
		result.Stats = append(result.Stats, stats)

		for _, m := range r.metrics {
			m.Observe(bodies, stats)
		}
		for _, obs := range r.observers {
			obs.OnFrame(bodies, stats)
		}

		if cfg.ValidateState {
			if idx := firstNonFinite(r.world); idx >= 0 {
				result.Errors = append(result.Errors, &FrameError{Frame: stats.Frame, Body: idx, Wrapped: ErrNonFinite})
				return false
			}
		}
		return true
	})

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, err
}

// RunWithCallback steps the world and hands each frame's stats to callback
// until it returns false or the frame budget is spent.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(world.FrameStats) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return r.drive(ctx, cfg, callback)
}

func (r *Runner) drive(ctx context.Context, cfg Config, fn func(world.FrameStats) bool) error {
	step := func(int) bool {
		return fn(r.world.Step(r.renderer))
	}

	if cfg.FPS > 0 {
		return NewDriver(cfg.FPS).Run(ctx, cfg.Frames, step)
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !step(i) {
			return nil
		}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", cfg.FPS)
	}
	return nil
}

func firstNonFinite(w *world.World) int {
	for i, b := range w.Bodies() {
		if !b.IsFinite() {
			return i
		}
	}
	return -1
}
