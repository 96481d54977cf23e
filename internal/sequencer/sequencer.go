// Package sequencer drives clip playback: which clip is current, when it is
// cut off, and what the display shows. All methods must be called from the
// application's event loop goroutine.
package sequencer

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/errmsg"
	"github.com/llehouerou/soundboard/internal/player"
	"github.com/llehouerou/soundboard/internal/timer"
)

const (
	// VolumeStep is the change applied by IncreaseVolume and DecreaseVolume.
	VolumeStep = 0.1

	countdownInterval = time.Second
)

// ClipChange is emitted after a clip starts playing.
type ClipChange struct {
	Index int
	Clip  clip.Clip
}

// Options configures a Sequencer.
type Options struct {
	Volume float64        // initial volume, clamped to [0, 1]
	Logger zerolog.Logger // zero value discards

	// OnEnd runs after End has torn the session down.
	OnEnd func()
	// OnClipChange runs after each successful PlayCurrent.
	OnClipChange func(ClipChange)
}

// Sequencer owns the session state and is the only writer to the engine.
type Sequencer struct {
	queue   *clip.Queue
	engine  player.Interface
	sched   timer.Scheduler
	surface Surface
	log     zerolog.Logger

	onEnd        func()
	onClipChange func(ClipChange)

	state State
}

// New creates an idle session at index 0 and pushes the initial display
// state to surface. It makes no engine calls.
func New(q *clip.Queue, engine player.Interface, sched timer.Scheduler, surface Surface, opts Options) *Sequencer {
	if surface == nil {
		surface = NopSurface{}
	}
	s := &Sequencer{
		queue:        q,
		engine:       engine,
		sched:        sched,
		surface:      surface,
		log:          opts.Logger,
		onEnd:        opts.OnEnd,
		onClipChange: opts.OnClipChange,
		state:        State{Volume: player.ClampLevel(opts.Volume)},
	}

	surface.SetSong(NoSong)
	surface.SetCountdown(CountdownPlaceholder)
	surface.SetVolume(s.state.Volume)
	surface.SetStartVisible(true)
	surface.SetError("")
	return s
}

// State returns a copy of the session state.
func (s *Sequencer) State() State { return s.state }

// Phase returns the current session phase.
func (s *Sequencer) Phase() Phase { return s.state.Phase() }

// Index returns the current queue position.
func (s *Sequencer) Index() int { return s.state.Index }

// Playing reports whether a session is active.
func (s *Sequencer) Playing() bool { return s.state.Playing }

// Volume returns the session volume.
func (s *Sequencer) Volume() float64 { return s.state.Volume }

// Queue returns the clip queue.
func (s *Sequencer) Queue() *clip.Queue { return s.queue }

// Current returns the clip at the current index.
func (s *Sequencer) Current() (clip.Clip, bool) {
	if s.queueEmpty() {
		return clip.Clip{}, false
	}
	return s.queue.At(s.state.Index), true
}

// Elapsed returns how far into the current clip the engine is, clamped to
// the clip length. It is zero while idle.
func (s *Sequencer) Elapsed() time.Duration {
	c, ok := s.Current()
	if !ok || !s.state.Playing {
		return 0
	}
	e := s.engine.Position() - c.Start
	return max(0, min(e, c.Length()))
}

// Begin starts the session at the current index. It does nothing when a
// session is already active or the queue is empty.
func (s *Sequencer) Begin() {
	if s.state.Playing || s.queueEmpty() {
		s.log.Debug().Bool("playing", s.state.Playing).Msg("begin ignored")
		return
	}
	s.state.Playing = true
	s.surface.SetStartVisible(false)
	s.PlayCurrent()
}

// PlayCurrent loads the current clip, plays it from its start offset and
// arms the cutoff and countdown timers. An engine failure ends the session
// and is reported on the error line.
func (s *Sequencer) PlayCurrent() {
	if !s.state.Playing || s.queueEmpty() {
		return
	}
	s.cancelTimers()
	s.state.Waiting = false

	c := s.queue.At(s.state.Index)
	if err := s.engine.Load(c.Path); err != nil {
		s.fail(c, errmsg.OpClipLoad, err)
		return
	}
	s.engine.SetVolume(s.state.Volume)
	if err := s.engine.PlayFrom(c.Start); err != nil {
		s.fail(c, errmsg.OpClipPlay, err)
		return
	}

	s.surface.SetError("")
	s.surface.SetSong(c.Name())
	s.state.Cutoff = s.sched.After(c.Length(), s.OnCutoffFire)
	s.refreshCountdown()

	s.log.Debug().
		Int("index", s.state.Index).
		Str("file", c.Path).
		Dur("start", c.Start).
		Dur("end", c.End).
		Msg("clip started")

	if s.onClipChange != nil {
		s.onClipChange(ClipChange{Index: s.state.Index, Clip: c})
	}
}

// OnCutoffFire pauses the engine at the end of the clip. The session stays
// active and waits for Next or Previous; it never advances on its own.
func (s *Sequencer) OnCutoffFire() {
	s.state.Cutoff = 0
	if !s.state.Playing {
		return
	}
	s.engine.Pause()
	s.cancel(&s.state.Countdown)
	s.state.Waiting = true
	s.surface.SetCountdown(FormatCountdown(0))
	s.log.Debug().Int("index", s.state.Index).Msg("clip cut off")
}

// Next plays the following clip, wrapping to the first after the last.
func (s *Sequencer) Next() {
	s.skip(1)
}

// Previous plays the preceding clip, wrapping to the last before the first.
func (s *Sequencer) Previous() {
	s.skip(-1)
}

func (s *Sequencer) skip(delta int) {
	if !s.state.Playing {
		s.log.Debug().Int("delta", delta).Msg("skip ignored while idle")
		return
	}
	s.cancelTimers()
	s.engine.Resume()
	s.engine.Stop()
	s.state.Index = s.queue.Wrap(s.state.Index + delta)
	s.PlayCurrent()
}

// End stops the session and resets the display. The OnEnd hook runs last,
// after every timer is cancelled and the engine is stopped.
func (s *Sequencer) End() {
	if !s.state.Playing {
		s.log.Debug().Msg("end ignored while idle")
		return
	}
	s.cancelTimers()
	s.state.Playing = false
	s.state.Waiting = false
	s.engine.Stop()

	s.surface.SetSong(NoSong)
	s.surface.SetCountdown(CountdownPlaceholder)
	s.surface.SetStartVisible(true)
	s.log.Debug().Int("index", s.state.Index).Msg("session ended")

	if s.onEnd != nil {
		s.onEnd()
	}
}

// Close cancels the timers and stops the engine without running OnEnd.
func (s *Sequencer) Close() {
	s.cancelTimers()
	if s.state.Playing {
		s.engine.Stop()
	}
	s.state.Playing = false
	s.state.Waiting = false
}

// SetVolume clamps v to [0, 1], stores it and applies it to the engine
// and the slider. NaN is ignored.
func (s *Sequencer) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = player.ClampLevel(v)
	s.state.Volume = v
	s.engine.SetVolume(v)
	s.surface.SetVolume(v)
}

// IncreaseVolume raises the volume by VolumeStep. At 1.0 it does nothing.
func (s *Sequencer) IncreaseVolume() {
	s.stepVolume(VolumeStep)
}

// DecreaseVolume lowers the volume by VolumeStep. At 0.0 it does nothing.
func (s *Sequencer) DecreaseVolume() {
	s.stepVolume(-VolumeStep)
}

func (s *Sequencer) stepVolume(delta float64) {
	// One decimal keeps repeated steps on 0.1, 0.2, ... instead of drifting.
	v := player.ClampLevel(math.Round((s.state.Volume+delta)*10) / 10)
	if v == s.state.Volume {
		return
	}
	s.SetVolume(v)
}

// Remaining returns the time left in the current clip, from the engine's
// absolute position. It is never negative.
func (s *Sequencer) Remaining() time.Duration {
	c, ok := s.Current()
	if !ok {
		return 0
	}
	return max(0, c.End-s.engine.Position())
}

// refreshCountdown shows the remaining time and re-arms itself.
func (s *Sequencer) refreshCountdown() {
	s.state.Countdown = 0
	if !s.state.Playing || s.state.Waiting {
		return
	}
	s.surface.SetCountdown(FormatCountdown(s.Remaining()))
	s.state.Countdown = s.sched.After(countdownInterval, s.refreshCountdown)
}

// fail returns the session to idle after an engine error.
func (s *Sequencer) fail(c clip.Clip, op errmsg.Op, err error) {
	s.cancelTimers()
	s.engine.Stop()
	s.state.Playing = false
	s.state.Waiting = false

	s.surface.SetSong(NoSong)
	s.surface.SetCountdown(CountdownPlaceholder)
	s.surface.SetStartVisible(true)
	s.surface.SetError(errmsg.FormatWith(op, c.File, err))

	s.log.Error().
		Err(err).
		Int("index", s.state.Index).
		Str("file", c.Path).
		Str("op", string(op)).
		Msg("clip playback failed")
}

func (s *Sequencer) cancelTimers() {
	s.cancel(&s.state.Cutoff)
	s.cancel(&s.state.Countdown)
}

func (s *Sequencer) cancel(h *timer.Handle) {
	if *h != 0 {
		s.sched.Cancel(*h)
		*h = 0
	}
}

func (s *Sequencer) queueEmpty() bool {
	return s.queue == nil || s.queue.Len() == 0
}
