package grid

// Package grid defines the evaluation grid shared by every model in a run.
//
// The grid is built once from the run request and handed to the models
// read-only; no model constructs or mutates its own grid. Heights are
// non-negative by construction (zmin is clamped at 0), which is the
// precondition the stress models rely on instead of re-validating input.

// Grid holds the vertical levels z and the lateral points y of the
// simulation plane. z ascends from the bed (or ground) upward.
type Grid struct {
	z []float64
	y []float64
}

// New builds a grid of nz levels spanning [zmin, zmin+height] and ny
// lateral points centered on 0 spanning width. A negative zmin is clamped
// to 0. nz and ny below 1 produce empty axes.
func New(zmin, height float64, nz int, width float64, ny int) *Grid {
	if zmin < 0 {
		zmin = 0
	}
	g := &Grid{}
	if nz > 0 {
		g.z = make([]float64, nz)
		dz := 0.0
		if nz > 1 {
			dz = height / float64(nz-1)
		}
		for i := range g.z {
			g.z[i] = zmin + dz*float64(i)
		}
	}
	if ny > 0 {
		g.y = make([]float64, ny)
		dy := 0.0
		if ny > 1 {
			dy = width / float64(ny-1)
		}
		for i := range g.y {
			g.y[i] = -width/2 + dy*float64(i)
		}
	}
	return g
}

// FromZ wraps an explicit set of levels. Negative heights are clamped to 0
// so the non-negative-height convention holds for any caller.
func FromZ(z []float64) *Grid {
	zz := make([]float64, len(z))
	for i, v := range z {
		if v < 0 {
			v = 0
		}
		zz[i] = v
	}
	return &Grid{z: zz}
}

// Z returns the vertical levels. Callers must not modify the slice.
func (g *Grid) Z() []float64 { return g.z }

// Y returns the lateral points. Callers must not modify the slice.
func (g *Grid) Y() []float64 { return g.y }

func (g *Grid) NZ() int { return len(g.z) }

func (g *Grid) NY() int { return len(g.y) }

// Dz is the vertical spacing between the first two levels, 0 for grids
// with fewer than two levels.
func (g *Grid) Dz() float64 {
	if len(g.z) < 2 {
		return 0
	}
	return g.z[1] - g.z[0]
}

// Height is the span from the lowest to the highest level.
func (g *Grid) Height() float64 {
	if len(g.z) < 2 {
		return 0
	}
	return g.z[len(g.z)-1] - g.z[0]
}

// IndexAbove returns the index of the first level at or above h, or NZ()
// when every level lies below h.
func (g *Grid) IndexAbove(h float64) int {
	for i, z := range g.z {
		if z >= h {
			return i
		}
	}
	return len(g.z)
}
