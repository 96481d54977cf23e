package sequencer

import (
	"fmt"
	"time"
)

// Display texts.
const (
	NoSong               = "None"
	CountdownPlaceholder = "--:--"
)

// Surface receives the display state. Implementations only render; they
// never call back into the Sequencer from these methods.
type Surface interface {
	SetSong(name string)
	SetCountdown(text string)
	SetVolume(level float64)
	SetStartVisible(visible bool)
	// SetError shows msg on the error line. An empty msg clears it.
	SetError(msg string)
}

// FormatCountdown renders d as MM:SS, truncated to whole seconds.
// Negative durations render as 00:00.
func FormatCountdown(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// NopSurface discards all display updates.
type NopSurface struct{}

func (NopSurface) SetSong(string)       {}
func (NopSurface) SetCountdown(string)  {}
func (NopSurface) SetVolume(float64)    {}
func (NopSurface) SetStartVisible(bool) {}
func (NopSurface) SetError(string)      {}
