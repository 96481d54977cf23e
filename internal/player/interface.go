// internal/player/interface.go
package player

import "time"

// Interface defines the engine contract used by the sequencer.
type Interface interface {
	// Load opens and decodes the file at path. Any previous file is stopped
	// and released. Nothing is audible until PlayFrom.
	Load(path string) error
	// PlayFrom starts the loaded file at offset.
	PlayFrom(offset time.Duration) error
	Pause()
	Resume()
	Stop()
	State() State
	// Position returns the absolute position in the loaded file.
	Position() time.Duration
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	Path() string
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
