package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundboard/internal/ui"
)

// The board is drawn at the top-left corner of the terminal inside a
// rounded border with two columns of horizontal padding.
const (
	originX    = 3 // border + padding
	originY    = 1 // border
	frameWidth = 6 // both borders + both paddings

	rowTitle     = 0
	rowSong      = 2
	rowCountdown = 3
	rowVolume    = 5
	rowStart     = 7
	rowError     = 8
	rowClips     = 10

	volumeLabel        = "Volume  "
	defaultSliderWidth = 30
	startLabel         = "Start"

	// rows after the clip list: blank line and short help
	footerRows = 2
)

// HitKind identifies what a mouse position is over.
type HitKind int

const (
	HitNone HitKind = iota
	HitSlider
	HitStart
)

// Hit is the result of HitTest.
type Hit struct {
	Kind     HitKind
	Fraction float64 // slider position in [0, 1] for HitSlider
}

// HitTest maps a terminal cell to a board control.
func (m *Model) HitTest(x, y int) Hit {
	row := y - originY
	switch row {
	case rowVolume:
		sx := m.sliderX()
		if x >= sx && x < sx+m.sliderWidth() {
			return Hit{Kind: HitSlider, Fraction: m.SliderFraction(x)}
		}
	case rowStart:
		if m.startVisible && x >= originX && x < originX+lipgloss.Width(m.renderStart()) {
			return Hit{Kind: HitStart}
		}
	}
	return Hit{Kind: HitNone}
}

// SliderFraction converts a column to a slider level, clamped to [0, 1].
// Used while dragging, when the pointer may leave the slider.
func (m *Model) SliderFraction(x int) float64 {
	w := m.sliderWidth()
	if w <= 1 {
		return 0
	}
	f := float64(x-m.sliderX()) / float64(w-1)
	return max(0, min(1, f))
}

func (m *Model) sliderX() int {
	return originX + lipgloss.Width(volumeLabel)
}

func (m *Model) sliderWidth() int {
	if m.Width() == 0 {
		return defaultSliderWidth
	}
	// label, then " 100% " and an icon after the bar
	w := m.Width() - frameWidth - lipgloss.Width(volumeLabel) - 10
	return max(ui.MinProgressBarWidth, min(ui.MaxProgressBarWidth, w))
}

func (m *Model) contentWidth() int {
	if m.Width() == 0 {
		return 60
	}
	return max(20, m.Width()-frameWidth)
}

// listHeight returns how many clip rows fit; zero height shows them all.
func (m *Model) listHeight() int {
	if m.Height() == 0 {
		return len(m.clips)
	}
	overhead := ui.BorderHeight + rowClips + 1 + footerRows
	return max(1, m.ListHeight(overhead))
}

// listWindow returns the range of clips to show, keeping the current clip
// visible with some context.
func (m *Model) listWindow() (start, end int) {
	n := len(m.clips)
	h := min(m.listHeight(), n)
	if h >= n {
		return 0, n
	}
	start = m.index - ui.ScrollMargin
	start = max(0, min(start, n-h))
	return start, start + h
}
