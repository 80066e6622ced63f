package prof

import "turbsim/grid"

// Mean-velocity profile models. Same capability shape as the stress
// closures: immutable parameters at construction, pure evaluation over the
// run grid, a labeled block for the run-summary report.

type Model interface {
	// Compute returns the mean streamwise velocity at each grid level [m/s].
	Compute(g *grid.Grid) []float64

	// Name is the identifier presets and run requests refer to the model by.
	Name() string

	Summary() string
}
