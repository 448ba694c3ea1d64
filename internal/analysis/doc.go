// Package analysis provides tools for characterising particle runs.
//
//   - [Divergence]: separation growth between a world and a perturbed twin
//   - [SweepBodies]: metric values across population sizes
//   - [PowerSpectrum], [DominantPeriod]: frequency content of a recorded series
//
// # Sensitivity
//
// A positive divergence exponent means collisions amplify small offsets:
//
//	res, _ := analysis.Divergence(w, 1e-9, 300)
//	if res.Exponent > 0 {
//	    // trajectories decorrelate
//	}
package analysis
