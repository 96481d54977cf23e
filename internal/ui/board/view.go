package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/soundboard/internal/icons"
	"github.com/llehouerou/soundboard/internal/keymap"
	"github.com/llehouerou/soundboard/internal/sequencer"
	"github.com/llehouerou/soundboard/internal/ui/render"
	"github.com/llehouerou/soundboard/internal/ui/styles"
)

const title = "Soundboard"

// View renders the board.
func (m *Model) View() string {
	s := styles.T().S()
	w := m.contentWidth()

	lines := make([]string, 0, rowClips+len(m.clips)+4)
	lines = append(lines,
		styles.TitleGradient(title),
		"",
		m.renderSong(w),
		m.renderCountdown(),
		"",
		m.renderVolume(),
		"",
		m.renderStartRow(),
		m.renderError(w),
		"",
		s.Muted.Render(fmt.Sprintf("Clips (%d)", len(m.clips))),
	)
	lines = append(lines, m.renderClips(w)...)
	lines = append(lines, "", m.help.View(keymap.Help{}))

	return s.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderSong(width int) string {
	s := styles.T().S()
	label := "Current Song: "
	name := m.song
	if name != sequencer.NoSong {
		name = icons.FormatAudio(name)
	}
	return s.Muted.Render(label) + s.Song.Render(render.Truncate(name, width-len(label)))
}

func (m *Model) renderCountdown() string {
	s := styles.T().S()
	var marker, text string
	switch m.phase {
	case sequencer.PhasePlaying:
		marker = icons.Playing()
		text = s.Countdown.Render(m.countdown)
	case sequencer.PhaseWaiting:
		marker = icons.Waiting()
		text = s.Waiting.Render(m.countdown)
	default:
		marker = icons.Idle()
		text = s.Subtle.Render(m.countdown)
	}
	return s.Muted.Render("Remaining:    ") + text + "  " + s.Muted.Render(marker)
}

func (m *Model) renderVolume() string {
	s := styles.T().S()
	bar := m.slider.ViewAs(m.volume)
	pct := fmt.Sprintf(" %3d%% ", int(m.volume*100+0.5))
	level := s.Base.Foreground(styles.LevelColor(m.volume))
	return s.Muted.Render(volumeLabel) + bar + level.Render(pct) + icons.Volume(m.volume)
}

func (m *Model) renderStart() string {
	return styles.T().S().Button.Render(icons.FormatStart(startLabel))
}

func (m *Model) renderStartRow() string {
	if !m.startVisible {
		return ""
	}
	return m.renderStart()
}

func (m *Model) renderError(width int) string {
	if m.errMsg == "" {
		return ""
	}
	return styles.T().S().Error.Render(render.TruncateEllipsis(icons.FormatError(m.errMsg), width))
}

func (m *Model) renderClips(width int) []string {
	s := styles.T().S()
	start, end := m.listWindow()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := m.clips[i]
		prefix := "  "
		if i == m.index {
			prefix = "> "
		}
		rng := fmt.Sprintf("%s-%s", formatOffset(c.Start), formatOffset(c.End))
		text := fmt.Sprintf("%s%2d. %s", prefix, i+1, render.Sanitize(c.Name()))
		if sub := c.Meta.Subtitle(); sub != "" {
			text += "  " + s.Subtle.Render(render.Sanitize(sub))
		}
		line := render.Fit(text, s.Subtle.Render(rng), width)
		if i == m.index {
			line = s.Current.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

// formatOffset renders d as m:ss, with tenths when not a whole second.
func formatOffset(d time.Duration) string {
	secs := int(d / time.Second)
	tenths := int(d%time.Second) / int(100*time.Millisecond)
	if tenths == 0 {
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	}
	return fmt.Sprintf("%d:%02d.%d", secs/60, secs%60, tenths)
}
