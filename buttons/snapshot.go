package buttons

// Snapshot is the latest control and UI state the buttons are resolved from.
// It is delivered whole on every update and never mutated by the buttons.
type Snapshot struct {
	Engageable                bool
	Enabled                   bool
	ExperimentalMode          bool
	AlwaysOnLateralActive     bool
	ConditionalExperimental   bool
	ConditionalStatus         int
	NavigateOnOpenpilot       bool
	TrafficModeActive         bool
	BigMap                    bool
	MapOpen                   bool
	RotatingWheel             bool
	SteeringAngleDeg          float32
	Personality               int
	UseKaofuiIcons            bool
	LongitudinalControl       bool
	ExperimentalModeConfirmed bool
}

// ParamStore is the subset of the params store the buttons write to.
type ParamStore interface {
	GetBool(key string) bool
	PutBool(key string, val bool) error
	PutInt(key string, val int) error
}
