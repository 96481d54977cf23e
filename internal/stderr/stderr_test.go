//go:build !windows

package stderr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestForward_LogsNonEmptyLines(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \nsecond line\n"), log)

	out := buf.String()
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("logged %d lines, want 2: %s", got, out)
	}
	if !strings.Contains(out, `"message":"ALSA lib pcm.c: underrun"`) {
		t.Errorf("missing first line: %s", out)
	}
	if !strings.Contains(out, `"source":"stderr"`) {
		t.Errorf("missing source field: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("lines should log at warn: %s", out)
	}
}
