package metrics

import "github.com/san-kum/particlesim/internal/sim"

// Defaults returns a fresh set of the standard metrics.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewEnergyDrift(),
		NewMomentum(),
		NewPeakSpeed(),
		NewCollisionRate(),
	}
}
