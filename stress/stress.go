package stress

import "turbsim/grid"

// Reynolds-stress closures. Each model is a set of immutable physical
// parameters fixed at construction; evaluating it over a grid is pure and
// allocates a fresh profile, so one instance is safe to share between
// goroutines as long as each call keeps its own output.

type Model interface {
	// Compute populates a stress profile over the run grid.
	Compute(g *grid.Grid) *Profile

	// Name is the identifier presets and run requests refer to the model by.
	Name() string

	// Summary returns the labeled parameter block for the run-summary report.
	Summary() string
}

// Profile holds the three Reynolds-stress components, index-aligned with
// the grid levels. A freshly built profile is all-zero; the caller that
// requested it owns it.
type Profile struct {
	Upwp []float64 `json:"upwp"` // u'w' [m^2/s^2]
	Vpwp []float64 `json:"vpwp"` // v'w' [m^2/s^2]
	Upvp []float64 `json:"upvp"` // u'v' [m^2/s^2]
}

func NewProfile(n int) *Profile {
	return &Profile{
		Upwp: make([]float64, n),
		Vpwp: make([]float64, n),
		Upvp: make([]float64, n),
	}
}

func (p *Profile) Len() int { return len(p.Upwp) }
