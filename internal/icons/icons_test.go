package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		style string
		want  Icons
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", noneIcons},
		{"bogus", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			t.Cleanup(func() { Init("none") })
			if current != tt.want {
				t.Errorf("Init(%q) selected wrong icon set", tt.style)
			}
		})
	}
}

func TestFormatAudio(t *testing.T) {
	Init("none")
	if got := FormatAudio("a.mp3"); got != "a.mp3" {
		t.Errorf("none: FormatAudio = %q", got)
	}

	Init("unicode")
	t.Cleanup(func() { Init("none") })
	if got := FormatAudio("a.mp3"); got != "🎵 a.mp3" {
		t.Errorf("unicode: FormatAudio = %q", got)
	}
}

func TestFormatStartAndError(t *testing.T) {
	Init("unicode")
	t.Cleanup(func() { Init("none") })

	if got := FormatStart("Start"); got != "▶ Start" {
		t.Errorf("FormatStart = %q", got)
	}
	if got := FormatError("boom"); got != "⚠ boom" {
		t.Errorf("FormatError = %q", got)
	}
}

func TestVolume(t *testing.T) {
	Init("none")

	if got := Volume(0); got != "Mute" {
		t.Errorf("Volume(0) = %q, want Mute", got)
	}
	if got := Volume(0.5); got != "Vol" {
		t.Errorf("Volume(0.5) = %q, want Vol", got)
	}
}

func TestPhaseMarkers(t *testing.T) {
	Init("none")

	if Playing() != ">" || Waiting() != "||" || Idle() != "[]" {
		t.Errorf("unexpected markers: %q %q %q", Playing(), Waiting(), Idle())
	}
}
