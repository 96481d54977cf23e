// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player. It records every call in order so tests
// can check what reached the engine.
type Mock struct {
	state    State
	path     string
	position time.Duration
	duration time.Duration
	volume   float64
	loadErr  error
	playErr  error
	calls    []string
	loads    []string
	offsets  []time.Duration
	volumes  []float64
}

// NewMock creates a stopped mock at full volume.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: 1.0}
}

func (m *Mock) Load(path string) error {
	m.calls = append(m.calls, "load")
	m.loads = append(m.loads, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.state = Stopped
	m.path = path
	return nil
}

func (m *Mock) PlayFrom(offset time.Duration) error {
	m.calls = append(m.calls, "play")
	m.offsets = append(m.offsets, offset)
	if m.playErr != nil {
		return m.playErr
	}
	if m.path == "" {
		return ErrNotLoaded
	}
	m.position = offset
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.calls = append(m.calls, "resume")
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.calls = append(m.calls, "stop")
	m.state = Stopped
	m.path = ""
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) {
	m.calls = append(m.calls, "volume")
	m.volume = ClampLevel(level)
	m.volumes = append(m.volumes, m.volume)
}

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) Path() string { return m.path }

// Test helpers

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// Advance moves the position forward as if d of audio had played.
func (m *Mock) Advance(d time.Duration) {
	if m.state == Playing {
		m.position += d
	}
}

// Calls returns the engine calls in order ("load", "play", "pause", ...).
func (m *Mock) Calls() []string { return m.calls }

// ResetCalls forgets recorded calls.
func (m *Mock) ResetCalls() {
	m.calls = nil
	m.loads = nil
	m.offsets = nil
	m.volumes = nil
}

func (m *Mock) Loads() []string { return m.loads }

func (m *Mock) Offsets() []time.Duration { return m.offsets }

func (m *Mock) Volumes() []float64 { return m.volumes }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
