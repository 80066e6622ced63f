package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turbsim/grid"
)

func TestUniformCompute(t *testing.T) {
	g := grid.FromZ([]float64{0, 10, 20})
	p := NewUniform(-0.2, 0.05, 0.01).Compute(g)
	for i := range g.Z() {
		assert.Equal(t, -0.2, p.Upwp[i])
		assert.Equal(t, 0.05, p.Vpwp[i])
		assert.Equal(t, 0.01, p.Upvp[i])
	}
}

func TestUniformSummary(t *testing.T) {
	s := NewUniform(-0.25, 0, 0).Summary()
	assert.Contains(t, s, "-0.25")
	assert.Contains(t, s, "u'w'")
}

func TestNewProfileZeroed(t *testing.T) {
	p := NewProfile(3)
	assert.Equal(t, []float64{0, 0, 0}, p.Upwp)
	assert.Equal(t, []float64{0, 0, 0}, p.Vpwp)
	assert.Equal(t, []float64{0, 0, 0}, p.Upvp)
}
