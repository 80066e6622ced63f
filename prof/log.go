package prof

import (
	"fmt"
	"math"

	"turbsim/grid"
)

// LogLaw is the logarithmic mean profile anchored at the reference height:
// U(z) = URef * ln(z/Z0) / ln(ZRef/Z0).
type LogLaw struct {
	URef float64 // mean velocity at the reference height [m/s]
	ZRef float64 // reference height [m]
	Z0   float64 // roughness length [m]
}

func NewLogLaw(uref, zref, z0 float64) *LogLaw {
	return &LogLaw{URef: uref, ZRef: zref, Z0: z0}
}

func (m *LogLaw) Compute(g *grid.Grid) []float64 {
	u := make([]float64, g.NZ())
	if m.Z0 <= 0 || m.ZRef <= 0 || m.ZRef == m.Z0 {
		// outside the law's domain, same degrade-to-zero policy as the
		// stress closures
		return u
	}
	denom := math.Log(m.ZRef / m.Z0)
	for i, z := range g.Z() {
		if z <= 0 {
			continue
		}
		u[i] = m.URef * math.Log(z/m.Z0) / denom
	}
	return u
}

func (m *LogLaw) Name() string { return "log" }

func (m *LogLaw) Summary() string {
	return fmt.Sprintf("Logarithmic mean-velocity profile used.\n"+
		"  Reference velocity (URef) = %-12.4g [m/s]\n"+
		"  Reference height (ZRef)   = %-12.4g [m]\n"+
		"  Roughness length (Z0)     = %-12.4g [m]\n",
		m.URef, m.ZRef, m.Z0)
}
