package misc

// StimulusMode selects how the simulation platform generates per-tick
// requests for the FIFO under test. Additional modes can be added as new
// traffic patterns are needed.
type StimulusMode string

const (
	// StimulusModeDirected replays the fixed scenarios: ordered
	// write/drain, saturation, and reset override.
	StimulusModeDirected StimulusMode = "directed"
	// StimulusModeRandom drives a seeded random request stream.
	StimulusModeRandom StimulusMode = "random"
	// StimulusModeSoak alternates full fills and full drains.
	StimulusModeSoak StimulusMode = "soak"
)

// DefaultStimulusMode returns the mode used when no explicit selection is
// made.
func DefaultStimulusMode() StimulusMode {
	return StimulusModeDirected
}

// StimulusModeFromString converts an arbitrary string into a StimulusMode.
// When the provided value is unknown the bool return will be false.
func StimulusModeFromString(value string) (StimulusMode, bool) {
	switch value {
	case string(StimulusModeDirected):
		return StimulusModeDirected, true
	case string(StimulusModeRandom):
		return StimulusModeRandom, true
	case string(StimulusModeSoak):
		return StimulusModeSoak, true
	default:
		return "", false
	}
}
