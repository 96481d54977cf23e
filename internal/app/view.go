// internal/app/view.go
package app

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.session.board.View()
}
