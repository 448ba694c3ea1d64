package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

// ErrNonFinite indicates a body whose position or velocity became NaN or Inf.
var ErrNonFinite = errors.New("sim: non-finite body state")

type Metric interface {
	Name() string
	Observe(bodies []physics.Body, stats world.FrameStats)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(bodies []physics.Body, stats world.FrameStats)
}

type Config struct {
	Frames int
	// FPS paces the run through a Driver; zero runs as fast as possible.
	FPS           int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Frames:        600,
		ValidateState: true,
	}
}

type Result struct {
	Frames      int
	Energy      []float64
	Stats       []world.FrameStats
	Collisions  int
	WallHits    int
	PointerHits int
	Metrics     map[string]float64
	Errors      []error
}

// FrameError wraps an error with the frame and body it was detected on.
type FrameError struct {
	Frame   int
	Body    int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (body %d): %v", e.Frame, e.Body, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
