// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/mpris"
	"github.com/llehouerou/soundboard/internal/timer"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)

	case timer.FiredMsg:
		if !m.loop.Fire(msg) {
			m.log.Trace().Uint64("handle", uint64(msg.Handle)).Msg("stale timer dropped")
		}

	case mpris.CommandMsg:
		m.handleCommand(msg)
	}

	return m, m.settle(cmd)
}

// settle runs after every message: it applies a deferred session reset,
// syncs the board with the sequencer, publishes the snapshot and collects
// the commands produced along the way.
func (m *Model) settle(cmd tea.Cmd) tea.Cmd {
	if m.quitting {
		return cmd
	}

	s := m.session
	changes := s.changes
	s.changes = nil

	if s.ended {
		s.ended = false
		if m.resetOnEnd {
			m.resetSession()
		}
	}

	m.session.board.SetSession(m.session.seq.Index(), m.session.seq.Phase())
	m.publish()

	cmds := []tea.Cmd{cmd, m.loop.Drain()}
	for _, c := range changes {
		cmds = append(cmds, m.announceCmd(c))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.session.board.SetSize(msg.Width, msg.Height)
}

// handleCommand applies a media controller request.
func (m *Model) handleCommand(msg mpris.CommandMsg) {
	seq := m.session.seq
	m.log.Debug().Stringer("command", msg.Command).Msg("media control")

	switch msg.Command {
	case mpris.CommandBegin:
		seq.Begin()
	case mpris.CommandEnd:
		seq.End()
	case mpris.CommandNext:
		seq.Next()
	case mpris.CommandPrevious:
		seq.Previous()
	case mpris.CommandSetVolume:
		seq.SetVolume(msg.Volume)
	}
}
