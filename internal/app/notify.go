// internal/app/notify.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/errmsg"
	"github.com/llehouerou/soundboard/internal/sequencer"
)

// announceCmd sends the now-playing notification off the event loop.
// Failures are logged and otherwise ignored.
func (m *Model) announceCmd(change sequencer.ClipChange) tea.Cmd {
	if m.announcer == nil {
		return nil
	}
	a := m.announcer
	total := m.queue.Len()
	log := m.log
	return func() tea.Msg {
		if err := a.Announce(change.Clip, change.Index, total); err != nil {
			log.Warn().Err(err).Msg(errmsg.FormatWith(errmsg.OpNotify, change.Clip.Name(), err))
		}
		return nil
	}
}
