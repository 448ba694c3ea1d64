package metrics

import (
	"math"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

func totalEnergy(bodies []physics.Body) float64 {
	total := 0.0
	for i := range bodies {
		total += bodies[i].KineticEnergy()
	}
	return total
}

// KineticEnergy is the mean total kinetic energy per frame.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(bodies []physics.Body, stats world.FrameStats) {
	e.total += totalEnergy(bodies)
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift is the relative change in total kinetic energy between the first
// and the latest observed frame. Walls and the pointer are not conservative,
// so this measures damping, not integration error.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(bodies []physics.Body, stats world.FrameStats) {
	energy := totalEnergy(bodies)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyDrift) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return (e.currentEnergy - e.initialEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}
