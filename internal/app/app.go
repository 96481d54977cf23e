// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/keymap"
	"github.com/llehouerou/soundboard/internal/mpris"
	"github.com/llehouerou/soundboard/internal/notify"
	"github.com/llehouerou/soundboard/internal/player"
	"github.com/llehouerou/soundboard/internal/sequencer"
	"github.com/llehouerou/soundboard/internal/timer"
)

// Publisher receives the session snapshot after every update.
// *mpris.Adapter implements it.
type Publisher interface {
	Publish(snap mpris.Snapshot)
}

// Options configures the application model.
type Options struct {
	// Volume is the level every new session starts at.
	Volume float64
	// ResetOnEnd recreates the session after it is ended. When false an
	// ended session stays on its current clip and can be started again.
	ResetOnEnd bool
	Logger     zerolog.Logger

	Announcer *notify.Announcer // nil disables notifications
	Publisher Publisher         // nil disables media controls
}

// Model is the root application model.
type Model struct {
	queue  *clip.Queue
	engine player.Interface
	loop   *timer.Loop
	keys   *keymap.Resolver
	log    zerolog.Logger

	volume     float64
	resetOnEnd bool
	announcer  *notify.Announcer
	publisher  Publisher

	session  *session
	dragging bool
	quitting bool

	Width  int
	Height int
}

// New creates the model with an idle session at the first clip.
func New(q *clip.Queue, engine player.Interface, opts Options) Model {
	m := Model{
		queue:      q,
		engine:     engine,
		loop:       timer.NewLoop(),
		keys:       keymap.NewResolver(keymap.All),
		log:        opts.Logger,
		volume:     opts.Volume,
		resetOnEnd: opts.ResetOnEnd,
		announcer:  opts.Announcer,
		publisher:  opts.Publisher,
	}
	for _, c := range m.keys.Conflicts() {
		m.log.Warn().
			Str("key", c.Key).
			Str("kept", string(c.Kept)).
			Str("dropped", string(c.Dropped)).
			Msg("key bound twice")
	}
	m.session = m.newSession()
	m.publish()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Phase returns the phase of the current session.
func (m Model) Phase() sequencer.Phase { return m.session.seq.Phase() }
