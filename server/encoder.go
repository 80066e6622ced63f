package server

import (
	"math"

	"turbsim/model"
)

// History replays go out quantized and delta-encoded: profile values change
// slowly along z, so a scaled start value plus small integer deltas beats
// repeating full floats for every level.

// values are quantized to 1/encodeScale of the model unit
const encodeScale = 1000.0

// Deltas ride as int32: in JSON small deltas cost the same bytes as they
// would in a narrower type, and the wider range keeps coarse grids (tens
// of metres per level) from wrapping.
type Encoding struct {
	Scale float64 `json:"scale"`
	N     int     `json:"n"`
	Start int     `json:"start"`
	Data  []int32 `json:"data"`
}

type EncodedFrame struct {
	StressModel string   `json:"stress_model"`
	ProfModel   string   `json:"prof_model"`
	Z           Encoding `json:"z"`
	U           Encoding `json:"u"`
	Upwp        Encoding `json:"upwp"`
	Vpwp        Encoding `json:"vpwp"`
	Upvp        Encoding `json:"upvp"`
}

func EncodeFrame(f *model.ProfileData) *EncodedFrame {
	return &EncodedFrame{
		StressModel: f.StressModel,
		ProfModel:   f.ProfModel,
		Z:           encodeSeries(f.Z, encodeScale),
		U:           encodeSeries(f.U, encodeScale),
		Upwp:        encodeSeries(f.Upwp, encodeScale),
		Vpwp:        encodeSeries(f.Vpwp, encodeScale),
		Upvp:        encodeSeries(f.Upvp, encodeScale),
	}
}

func DecodeFrame(e *EncodedFrame) *model.ProfileData {
	return &model.ProfileData{
		StressModel: e.StressModel,
		ProfModel:   e.ProfModel,
		Z:           decodeSeries(e.Z),
		U:           decodeSeries(e.U),
		Upwp:        decodeSeries(e.Upwp),
		Vpwp:        decodeSeries(e.Vpwp),
		Upvp:        decodeSeries(e.Upvp),
	}
}

func encodeSeries(vals []float64, scale float64) Encoding {
	e := Encoding{Scale: scale, N: len(vals)}
	if len(vals) == 0 {
		return e
	}
	prev := quantize(vals[0], scale)
	e.Start = prev
	e.Data = make([]int32, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		q := quantize(vals[i], scale)
		e.Data[i-1] = int32(q - prev)
		prev = q
	}
	return e
}

func decodeSeries(e Encoding) []float64 {
	if e.N == 0 {
		return nil
	}
	vals := make([]float64, e.N)
	q := e.Start
	vals[0] = float64(q) / e.Scale
	for i, d := range e.Data {
		q += int(d)
		vals[i+1] = float64(q) / e.Scale
	}
	return vals
}

func quantize(v, scale float64) int {
	return int(math.Round(v * scale))
}
