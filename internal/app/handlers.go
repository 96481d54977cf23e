// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/app/handler"
	"github.com/llehouerou/soundboard/internal/keymap"
)

// handleKeyMsg resolves the key to an action and runs the first handler
// that accepts it.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	_, cmd := handler.Chain(m.keys.Resolve(msg.String()),
		m.handleGlobalKeys,
		m.handleSessionKeys,
		m.handleVolumeKeys,
	)
	return cmd
}

// handleGlobalKeys handles quit and help.
func (m *Model) handleGlobalKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // other actions handled elsewhere
	case keymap.ActionQuit:
		m.session.seq.Close()
		m.quitting = true
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.session.board.ToggleHelp()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handleSessionKeys handles start, stop and clip skipping.
func (m *Model) handleSessionKeys(action keymap.Action) handler.Result {
	seq := m.session.seq
	switch action { //nolint:exhaustive // other actions handled elsewhere
	case keymap.ActionBegin:
		seq.Begin()
	case keymap.ActionEnd:
		seq.End()
	case keymap.ActionNext:
		seq.Next()
	case keymap.ActionPrevious:
		seq.Previous()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleVolumeKeys handles volume steps.
func (m *Model) handleVolumeKeys(action keymap.Action) handler.Result {
	seq := m.session.seq
	switch action { //nolint:exhaustive // other actions handled elsewhere
	case keymap.ActionVolumeUp:
		seq.IncreaseVolume()
	case keymap.ActionVolumeDown:
		seq.DecreaseVolume()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
