package stress

import (
	"fmt"

	"turbsim/grid"
)

// Uniform applies the same three stress components at every grid level.
type Uniform struct {
	Upwp float64 // u'w' [m^2/s^2]
	Vpwp float64 // v'w' [m^2/s^2]
	Upvp float64 // u'v' [m^2/s^2]
}

func NewUniform(upwp, vpwp, upvp float64) *Uniform {
	return &Uniform{Upwp: upwp, Vpwp: vpwp, Upvp: upvp}
}

func (m *Uniform) Compute(g *grid.Grid) *Profile {
	p := NewProfile(g.NZ())
	for i := range g.Z() {
		p.Upwp[i] = m.Upwp
		p.Vpwp[i] = m.Vpwp
		p.Upvp[i] = m.Upvp
	}
	return p
}

func (m *Uniform) Name() string { return "uniform" }

func (m *Uniform) Summary() string {
	return fmt.Sprintf("Uniform Reynolds-stress model used.\n"+
		"  u'w' = %-12.4g [m^2/s^2]\n"+
		"  v'w' = %-12.4g [m^2/s^2]\n"+
		"  u'v' = %-12.4g [m^2/s^2]\n",
		m.Upwp, m.Vpwp, m.Upvp)
}
