// internal/app/session.go
package app

import (
	"github.com/llehouerou/soundboard/internal/mpris"
	"github.com/llehouerou/soundboard/internal/sequencer"
	"github.com/llehouerou/soundboard/internal/ui/board"
)

// session pairs a sequencer with the board it draws on. The sequencer hooks
// only record what happened; the model acts on it once the sequencer call
// has returned.
type session struct {
	seq   *sequencer.Sequencer
	board *board.Model

	ended   bool
	changes []sequencer.ClipChange
}

func (m *Model) newSession() *session {
	s := &session{board: board.New(m.queue.Clips())}
	if m.Width > 0 || m.Height > 0 {
		s.board.SetSize(m.Width, m.Height)
	}
	s.seq = sequencer.New(m.queue, m.engine, m.loop, s.board, sequencer.Options{
		Volume: m.volume,
		Logger: m.log,
		OnEnd: func() {
			s.ended = true
		},
		OnClipChange: func(c sequencer.ClipChange) {
			s.changes = append(s.changes, c)
		},
	})
	s.board.SetSession(s.seq.Index(), s.seq.Phase())
	return s
}

// resetSession discards the ended session and starts a fresh one with the
// configured volume. Every timer still armed on the loop is disarmed first.
func (m *Model) resetSession() {
	m.loop.CancelAll()
	m.dragging = false
	m.session = m.newSession()
	m.log.Debug().Msg("session reset")
}

// snapshot captures the session state for media controls.
func (m *Model) snapshot() mpris.Snapshot {
	seq := m.session.seq
	c, ok := seq.Current()
	return mpris.Snapshot{
		Phase:   seq.Phase(),
		Clip:    c,
		HasClip: ok && seq.Playing(),
		Index:   seq.Index(),
		Total:   m.queue.Len(),
		Volume:  seq.Volume(),
		Elapsed: seq.Elapsed(),
	}
}

func (m *Model) publish() {
	if m.publisher != nil {
		m.publisher.Publish(m.snapshot())
	}
}
