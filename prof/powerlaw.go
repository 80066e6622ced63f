package prof

import (
	"fmt"
	"math"

	"turbsim/grid"
)

// PowerLaw is the shear-exponent mean profile:
// U(z) = URef * (z/ZRef)^Exp.
type PowerLaw struct {
	URef float64 // mean velocity at the reference height [m/s]
	ZRef float64 // reference height [m]
	Exp  float64 // shear exponent, 1/7 for neutral boundary layers
}

func NewPowerLaw(uref, zref, exp float64) *PowerLaw {
	return &PowerLaw{URef: uref, ZRef: zref, Exp: exp}
}

func (m *PowerLaw) Compute(g *grid.Grid) []float64 {
	u := make([]float64, g.NZ())
	if m.ZRef <= 0 {
		return u
	}
	for i, z := range g.Z() {
		u[i] = m.URef * math.Pow(z/m.ZRef, m.Exp)
	}
	return u
}

func (m *PowerLaw) Name() string { return "powerlaw" }

func (m *PowerLaw) Summary() string {
	return fmt.Sprintf("Power-law mean-velocity profile used.\n"+
		"  Reference velocity (URef) = %-12.4g [m/s]\n"+
		"  Reference height (ZRef)   = %-12.4g [m]\n"+
		"  Shear exponent (Exp)      = %-12.4g [-]\n",
		m.URef, m.ZRef, m.Exp)
}
