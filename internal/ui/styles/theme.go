// Package styles holds the board's color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the board.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - title, active clip
	Secondary lipgloss.Color // Gold/orange - slider end, waiting marker

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgButton lipgloss.Color // Start control background

	// Borders
	Border lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color // Red - error line
	Warning lipgloss.Color // Yellow/orange - waiting

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the board.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Labels
	Subtle    lipgloss.Style // Hints, inactive clips
	Title     lipgloss.Style // Bold, bright
	Song      lipgloss.Style // Current song value
	Countdown lipgloss.Style // Remaining time while playing
	Waiting   lipgloss.Style // Remaining time after cutoff
	Current   lipgloss.Style // Current clip in the list
	Button    lipgloss.Style // Start control
	Frame     lipgloss.Style // Border around the board
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgButton: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     base.Bold(true),
		Song:      base.Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Waiting:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Current: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Button: lipgloss.NewStyle().
			Background(t.BgButton).
			Foreground(t.FgBase).
			Bold(true).
			Padding(0, 2),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
