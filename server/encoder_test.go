package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbsim/model"
)

func TestEncodeDecodeFrame(t *testing.T) {
	f := &model.ProfileData{
		StressModel: "tidal",
		ProfModel:   "log",
		Z:           []float64{0, 5, 10, 15},
		U:           []float64{0, 1.382, 2, 2.15},
		Upwp:        []float64{-0.25, -0.125, 0, 0},
		Vpwp:        []float64{0, 0, 0, 0},
		Upvp:        []float64{0, 0, 0, 0},
	}

	got := DecodeFrame(EncodeFrame(f))
	assert.Equal(t, f.StressModel, got.StressModel)
	assert.Equal(t, f.ProfModel, got.ProfModel)
	require.Len(t, got.U, len(f.U))
	for i := range f.Z {
		assert.InDelta(t, f.Z[i], got.Z[i], 1.0/encodeScale)
		assert.InDelta(t, f.U[i], got.U[i], 1.0/encodeScale)
		assert.InDelta(t, f.Upwp[i], got.Upwp[i], 1.0/encodeScale)
		assert.Zero(t, got.Vpwp[i])
		assert.Zero(t, got.Upvp[i])
	}
}

func TestEncodeSeriesShape(t *testing.T) {
	e := encodeSeries([]float64{-0.25, -0.125, 0, 0}, encodeScale)
	assert.Equal(t, 4, e.N)
	assert.Equal(t, -250, e.Start)
	assert.Equal(t, []int32{125, 125, 0}, e.Data)
}

func TestEncodeSeriesCoarseLevels(t *testing.T) {
	// per-level steps far beyond 32.767 model units must not wrap
	vals := []float64{0, 40, 80, 200}
	got := decodeSeries(encodeSeries(vals, encodeScale))
	for i := range vals {
		assert.InDelta(t, vals[i], got[i], 1.0/encodeScale)
	}
}

func TestEncodeSeriesEmpty(t *testing.T) {
	e := encodeSeries(nil, encodeScale)
	assert.Zero(t, e.N)
	assert.Nil(t, decodeSeries(e))
}
