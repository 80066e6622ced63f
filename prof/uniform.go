package prof

import (
	"fmt"

	"turbsim/grid"
)

// Uniform applies the same mean velocity at every grid level.
type Uniform struct {
	URef float64 // mean velocity [m/s]
}

func NewUniform(uref float64) *Uniform {
	return &Uniform{URef: uref}
}

func (m *Uniform) Compute(g *grid.Grid) []float64 {
	u := make([]float64, g.NZ())
	for i := range u {
		u[i] = m.URef
	}
	return u
}

func (m *Uniform) Name() string { return "uniform" }

func (m *Uniform) Summary() string {
	return fmt.Sprintf("Uniform mean-velocity profile used.\n"+
		"  Velocity (URef) = %-12.4g [m/s]\n", m.URef)
}
