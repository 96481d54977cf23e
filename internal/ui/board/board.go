// Package board renders the soundboard screen: current song, countdown,
// volume slider, start control, error line, clip list and help footer.
package board

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"

	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/sequencer"
	"github.com/llehouerou/soundboard/internal/ui"
	"github.com/llehouerou/soundboard/internal/ui/styles"
)

// Verify Model implements sequencer.Surface at compile time.
var _ sequencer.Surface = (*Model)(nil)

// Model is the display surface for one session.
type Model struct {
	ui.Base

	clips []clip.Clip
	index int
	phase sequencer.Phase

	song         string
	countdown    string
	volume       float64
	startVisible bool
	errMsg       string

	slider progress.Model
	help   help.Model
}

// New creates a board in the idle state for clips.
func New(clips []clip.Clip) *Model {
	from, to := styles.SliderColors()
	return &Model{
		clips:        clips,
		song:         sequencer.NoSong,
		countdown:    sequencer.CountdownPlaceholder,
		startVisible: true,
		slider: progress.New(
			progress.WithGradient(from, to),
			progress.WithoutPercentage(),
			progress.WithWidth(defaultSliderWidth),
		),
		help: help.New(),
	}
}

// SetSong implements sequencer.Surface.
func (m *Model) SetSong(name string) { m.song = name }

// SetCountdown implements sequencer.Surface.
func (m *Model) SetCountdown(text string) { m.countdown = text }

// SetVolume implements sequencer.Surface.
func (m *Model) SetVolume(level float64) { m.volume = level }

// SetStartVisible implements sequencer.Surface.
func (m *Model) SetStartVisible(visible bool) { m.startVisible = visible }

// SetError implements sequencer.Surface.
func (m *Model) SetError(msg string) { m.errMsg = msg }

// SetSession updates the clip list cursor and phase marker.
func (m *Model) SetSession(index int, phase sequencer.Phase) {
	m.index = index
	m.phase = phase
}

// SetSize resizes the board and its slider.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.slider.Width = m.sliderWidth()
	m.help.Width = max(0, width-frameWidth)
}

// ToggleHelp switches between the short and full help footer.
func (m *Model) ToggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// Song returns the displayed song text.
func (m *Model) Song() string { return m.song }

// Countdown returns the displayed countdown text.
func (m *Model) Countdown() string { return m.countdown }

// Volume returns the slider level.
func (m *Model) Volume() float64 { return m.volume }

// StartVisible reports whether the start control is shown.
func (m *Model) StartVisible() bool { return m.startVisible }

// Error returns the error line text.
func (m *Model) Error() string { return m.errMsg }
