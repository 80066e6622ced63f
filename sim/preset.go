package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"turbsim/grid"
	"turbsim/model"
	"turbsim/prof"
	"turbsim/stress"
)

// Preset is a named parameter set shipped under conf/, pairing a stress
// closure with a mean-profile model the way the viewer refers to them.
type Preset struct {
	Name        string `json:"name"`
	StressModel string `json:"stress_model"` // "tidal" | "uniform"
	ProfModel   string `json:"prof_model"`   // "log" | "powerlaw" | "uniform"

	Ustar float64 `json:"ustar"`
	Zref  float64 `json:"zref"`

	Upwp float64 `json:"upwp"`
	Vpwp float64 `json:"vpwp"`
	Upvp float64 `json:"upvp"`

	URef  float64 `json:"uref"`
	ZRef  float64 `json:"zref_prof"`
	Z0    float64 `json:"z0"`
	PLExp float64 `json:"pl_exp"`
}

// LoadPresets reads the preset file and returns the sets sorted by name.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// BuildRun instantiates the preset's model pair over the given grid.
func (p Preset) BuildRun(g *grid.Grid) (*Run, error) {
	r := &Run{Grid: g}
	switch p.StressModel {
	case "tidal":
		r.Stress = stress.NewTidal(p.Ustar, p.Zref)
	case "uniform":
		r.Stress = stress.NewUniform(p.Upwp, p.Vpwp, p.Upvp)
	default:
		return nil, fmt.Errorf("unknown stress model %q", p.StressModel)
	}
	switch p.ProfModel {
	case "log":
		r.Prof = prof.NewLogLaw(p.URef, p.ZRef, p.Z0)
	case "powerlaw":
		r.Prof = prof.NewPowerLaw(p.URef, p.ZRef, p.PLExp)
	case "uniform":
		r.Prof = prof.NewUniform(p.URef)
	default:
		return nil, fmt.Errorf("unknown profile model %q", p.ProfModel)
	}
	return r, nil
}

// BuildRunFromEnv turns a viewer run request into a run: a named preset
// when one is given, the request's explicit parameters otherwise.
func BuildRunFromEnv(env model.Env, presets []Preset, g *grid.Grid) (*Run, error) {
	if env.Preset != "" {
		p, ok := FindPreset(presets, env.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", env.Preset)
		}
		return p.BuildRun(g)
	}
	p := Preset{
		StressModel: env.StressModel,
		ProfModel:   env.ProfModel,
		Ustar:       env.Ustar,
		Zref:        env.Zref,
		Upwp:        env.Upwp,
		Vpwp:        env.Vpwp,
		Upvp:        env.Upvp,
		URef:        env.URef,
		ZRef:        env.ZRef,
		Z0:          env.Z0,
		PLExp:       env.PLExp,
	}
	return p.BuildRun(g)
}
