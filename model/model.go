package model

// Wire types exchanged with the profile viewer.

// Msg is the envelope for every websocket message in both directions.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Env is the run request from the front end. When Preset is set it wins;
// otherwise the explicit model names and parameters below are used.
type Env struct {
	Preset string `json:"preset"`

	StressModel string `json:"stress_model"` // "tidal" | "uniform"
	ProfModel   string `json:"prof_model"`   // "log" | "powerlaw" | "uniform"

	// tidal stress parameters
	Ustar float64 `json:"ustar"`
	Zref  float64 `json:"zref"`

	// uniform stress parameters
	Upwp float64 `json:"upwp"`
	Vpwp float64 `json:"vpwp"`
	Upvp float64 `json:"upvp"`

	// mean-profile parameters
	URef  float64 `json:"uref"`
	ZRef  float64 `json:"zref_prof"`
	Z0    float64 `json:"z0"`
	PLExp float64 `json:"pl_exp"`
}

// ProfileData is one computed frame pushed to the viewer.
type ProfileData struct {
	StressModel string    `json:"stress_model"`
	ProfModel   string    `json:"prof_model"`
	Z           []float64 `json:"z"`
	U           []float64 `json:"u"`
	Upwp        []float64 `json:"upwp"`
	Vpwp        []float64 `json:"vpwp"`
	Upvp        []float64 `json:"upvp"`
}

const (
	// message types understood by the hub
	MsgEnv     = "env"
	MsgStart   = "start"
	MsgStop    = "stop"
	MsgHistory = "history"

	// message types sent back
	MsgEnvSet  = "envSet"
	MsgStarted = "started"
	MsgStopped = "stopped"
	MsgFrame   = "frame"
)
