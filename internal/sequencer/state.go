package sequencer

import "github.com/llehouerou/soundboard/internal/timer"

// Phase is the session phase derived from State.
//
//	Idle ──Begin──► Playing ──cutoff──► Waiting
//	 ▲                │  ▲                 │
//	 │                │  └──Next/Previous──┘
//	 └──────End───────┴────────────────────┘
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWaiting
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// State is the mutable session state. Only the Sequencer writes to it.
type State struct {
	Index     int          // position in the queue
	Playing   bool         // session active; the engine may still be paused
	Volume    float64      // 0.0 to 1.0
	Cutoff    timer.Handle // pending end-of-clip pause, zero when none
	Countdown timer.Handle // pending countdown refresh, zero when none
	Waiting   bool         // cutoff fired, engine paused until Next/Previous
}

// Phase reports the phase the state is in.
func (s State) Phase() Phase {
	switch {
	case !s.Playing:
		return PhaseIdle
	case s.Waiting:
		return PhaseWaiting
	default:
		return PhasePlaying
	}
}
