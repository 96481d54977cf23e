package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyGradient_KeepsText(t *testing.T) {
	out := applyGradient("Soundboard", false, "#000000", "#ffffff")
	if got := lipgloss.Width(out); got != len("Soundboard") {
		t.Errorf("width = %d, want %d", got, len("Soundboard"))
	}
}

func TestApplyGradient_Empty(t *testing.T) {
	if out := applyGradient("", true, "#000000", "#ffffff"); out != "" {
		t.Errorf("applyGradient(\"\") = %q", out)
	}
}

func TestBlendColors(t *testing.T) {
	colors := blendColors(3, "#000000", "#ffffff")
	if len(colors) != 3 {
		t.Fatalf("len = %d, want 3", len(colors))
	}
	if got := colorToHex(colors[0]); got != "#000000" {
		t.Errorf("first = %s, want #000000", got)
	}
	if got := colorToHex(colors[2]); got != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", got)
	}
}

func TestLevelColor(t *testing.T) {
	if LevelColor(0) == LevelColor(1) {
		t.Error("LevelColor should differ between empty and full")
	}
	if LevelColor(-1) != LevelColor(0) {
		t.Error("LevelColor should clamp below 0")
	}
	if LevelColor(2) != LevelColor(1) {
		t.Error("LevelColor should clamp above 1")
	}
	if got := string(LevelColor(0.5)); !strings.HasPrefix(got, "#") || len(got) != 7 {
		t.Errorf("LevelColor(0.5) = %q, want hex color", got)
	}
}

func TestLipglossToColor_Fallback(t *testing.T) {
	c := lipglossToColor("39")
	r, g, b, _ := c.RGBA()
	if r != g || g != b {
		t.Errorf("ANSI fallback should be gray, got %d %d %d", r, g, b)
	}
}

func TestTitleGradient(t *testing.T) {
	out := TitleGradient("Soundboard")
	if lipgloss.Width(out) != len("Soundboard") {
		t.Errorf("TitleGradient = %q", out)
	}
}
