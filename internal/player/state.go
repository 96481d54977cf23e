// internal/player/state.go
package player

// State represents the engine state machine.
//
//	┌──────────┐  PlayFrom   ┌──────────┐
//	│  Stopped │ ───────────▶│  Playing │
//	└──────────┘             └──────────┘
//	     ▲                      │    ▲
//	     │ Stop           Pause │    │ Resume
//	     │                      ▼    │
//	     │                   ┌──────────┐
//	     └───────────────────│  Paused  │
//	                         └──────────┘
//
// Load leaves the engine Stopped with a file ready for PlayFrom.
// Pause while not Playing and Resume while not Paused are ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a file is playing or paused.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
