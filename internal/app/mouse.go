// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/ui/board"
)

// handleMouseMsg handles clicks on the start control and the volume slider.
// A press on the slider starts a drag that follows the pointer until the
// button is released, even outside the slider.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	seq := m.session.seq

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive // other buttons ignored
		case tea.MouseButtonWheelUp:
			seq.IncreaseVolume()
			return
		case tea.MouseButtonWheelDown:
			seq.DecreaseVolume()
			return
		case tea.MouseButtonLeft:
		default:
			return
		}

		hit := m.session.board.HitTest(msg.X, msg.Y)
		switch hit.Kind {
		case board.HitSlider:
			m.dragging = true
			seq.SetVolume(hit.Fraction)
		case board.HitStart:
			seq.Begin()
		case board.HitNone:
		}

	case tea.MouseActionMotion:
		if m.dragging {
			seq.SetVolume(m.session.board.SliderFraction(msg.X))
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}
}
