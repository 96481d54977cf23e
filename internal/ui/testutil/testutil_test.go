package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"color", "\x1b[38;5;39mblue\x1b[0m text", "blue text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	out := "first\nsecond line\nthird"

	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q", got)
	}
	if !ContainsLine(out, "third") {
		t.Error("ContainsLine(third) = false")
	}
	if ContainsLine(out, "fourth") {
		t.Error("ContainsLine(fourth) = true")
	}
}

func TestKey(t *testing.T) {
	for _, s := range []string{"enter", "esc", "up", "down", "left", "right", "ctrl+c", "q", "s", "+", "?"} {
		if got := Key(s).String(); got != s {
			t.Errorf("Key(%q).String() = %q", s, got)
		}
	}
}

func TestMouseHelpers(t *testing.T) {
	if m := Press(3, 4); m.Action != tea.MouseActionPress || m.X != 3 || m.Y != 4 {
		t.Errorf("Press = %+v", m)
	}
	if m := Drag(5, 4); m.Action != tea.MouseActionMotion || m.Button != tea.MouseButtonLeft {
		t.Errorf("Drag = %+v", m)
	}
	if m := Release(5, 4); m.Action != tea.MouseActionRelease {
		t.Errorf("Release = %+v", m)
	}
}
