// Package icons selects the glyphs used by the board.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio   string
	Playing string
	Waiting string
	Idle    string
	Volume  string
	Muted   string
	Start   string
	Error   string
}

var (
	nerdIcons = Icons{
		Audio:   "\uf001 ",     // nf-fa-music
		Playing: "\U000f040a",  // nf-md-play
		Waiting: "\U000f03e4",  // nf-md-pause
		Idle:    "\U000f04db",  // nf-md-stop
		Volume:  "\U000f057e",  // nf-md-volume_high
		Muted:   "\U000f075f",  // nf-md-volume_mute
		Start:   "\U000f040a ", // nf-md-play
		Error:   "\uf071 ",     // nf-fa-warning
	}

	unicodeIcons = Icons{
		Audio:   "🎵 ",
		Playing: "▶",
		Waiting: "⏸",
		Idle:    "■",
		Volume:  "🔊",
		Muted:   "🔇",
		Start:   "▶ ",
		Error:   "⚠ ",
	}

	noneIcons = Icons{
		Audio:   "",
		Playing: ">",
		Waiting: "||",
		Idle:    "[]",
		Volume:  "Vol",
		Muted:   "Mute",
		Start:   "",
		Error:   "! ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a clip name with the audio icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// FormatStart formats the start control label.
func FormatStart(label string) string {
	return current.Start + label
}

// FormatError prefixes an error line.
func FormatError(msg string) string {
	return current.Error + msg
}

// Playing returns the marker for a playing clip.
func Playing() string {
	return current.Playing
}

// Waiting returns the marker for a clip cut off and waiting.
func Waiting() string {
	return current.Waiting
}

// Idle returns the marker shown while no session runs.
func Idle() string {
	return current.Idle
}

// Volume returns the volume icon, or the muted one at level 0.
func Volume(level float64) string {
	if level <= 0 {
		return current.Muted
	}
	return current.Volume
}
