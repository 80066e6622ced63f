package stress

import (
	"fmt"

	"turbsim/grid"
)

// Tidal is the tidal-channel closure: boundary-generated shear u'w' decays
// linearly from -Ustar^2 at the bed to zero at the reference height, and
// vanishes above it. The cross components are identically zero.
type Tidal struct {
	Ustar float64 // friction velocity [m/s]
	Zref  float64 // height above which the shear stress vanishes [m]
}

func NewTidal(ustar, zref float64) *Tidal {
	return &Tidal{Ustar: ustar, Zref: zref}
}

// Compute evaluates the profile level by level. A Zref at or below zero
// makes the z < Zref condition vacuous for the non-negative grid, so the
// profile degrades to all-zero rather than erroring.
func (m *Tidal) Compute(g *grid.Grid) *Profile {
	p := NewProfile(g.NZ())
	for i, z := range g.Z() {
		if z < m.Zref {
			p.Upwp[i] = -m.Ustar * m.Ustar * (1 - z/m.Zref)
		}
	}
	return p
}

func (m *Tidal) Name() string { return "tidal" }

func (m *Tidal) Summary() string {
	return fmt.Sprintf("Tidal-channel Reynolds-stress model used.\n"+
		"  Friction velocity (Ustar) = %-12.4g [m/s]\n"+
		"  Reference height (Zref)   = %-12.4g [m]\n",
		m.Ustar, m.Zref)
}
