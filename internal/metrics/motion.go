package metrics

import (
	"math"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

// Momentum is the mean magnitude of the total linear momentum per frame.
type Momentum struct {
	name    string
	sum     float64
	samples int
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []physics.Body, stats world.FrameStats) {
	var px, py float64
	for i := range bodies {
		px += bodies[i].Mass * bodies[i].DX
		py += bodies[i].Mass * bodies[i].DY
	}
	m.sum += math.Hypot(px, py)
	m.samples++
}

func (m *Momentum) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Momentum) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakSpeed is the highest single-body speed seen.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(bodies []physics.Body, stats world.FrameStats) {
	for i := range bodies {
		p.peak = math.Max(p.peak, bodies[i].Speed())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

// CollisionRate is the mean number of resolved collisions per frame.
type CollisionRate struct {
	name       string
	collisions int
	samples    int
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(bodies []physics.Body, stats world.FrameStats) {
	c.collisions += stats.Collisions
	c.samples++
}

func (c *CollisionRate) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.collisions) / float64(c.samples)
}

func (c *CollisionRate) Reset() {
	c.collisions = 0
	c.samples = 0
}
