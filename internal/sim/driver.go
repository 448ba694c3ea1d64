package sim

import (
	"context"
	"time"
)

// Driver calls a frame function at a fixed rate. Frames are counted, not timed:
// a slow frame delays the next one rather than being skipped.
type Driver struct {
	interval time.Duration
}

func NewDriver(fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{interval: time.Second / time.Duration(fps)}
}

func (d *Driver) Interval() time.Duration { return d.interval }

// Run invokes frame up to limit times (forever when limit <= 0). It stops when
// frame returns false, returning nil, or when ctx is done, returning ctx.Err().
func (d *Driver) Run(ctx context.Context, limit int, frame func(n int) bool) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for n := 0; limit <= 0 || n < limit; n++ {
		if n > 0 {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !frame(n) {
			return nil
		}
	}
	return nil
}
