package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Stop stops playback and releases the loaded file.
func (p *Player) Stop() {
	if p.state == Stopped && p.streamer == nil {
		return
	}

	if p.state.IsActive() {
		speaker.Clear()
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.path = ""
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// State returns the engine state.
func (p *Player) State() State { return p.state }

// Path returns the loaded file, or "" when nothing is loaded.
func (p *Player) Path() string { return p.path }

// Position returns the current position in the loaded file.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	if !p.state.IsActive() {
		return p.format.SampleRate.D(p.streamer.Position())
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded file.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}
