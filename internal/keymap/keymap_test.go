//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 2},
		{"session context", "session", true, 4},
		{"volume context", "volume", true, 2},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestAll_EveryBindingHasKeysAndDescription(t *testing.T) {
	for _, b := range All {
		assert.NotEmpty(t, b.Keys, "action %q", b.Action)
		assert.NotEmpty(t, b.Description, "action %q", b.Action)
	}
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(ActionNext)
	assert.True(t, ok)
	assert.Equal(t, []string{"right", "l"}, b.Keys)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestBinding_Key(t *testing.T) {
	b, _ := Lookup(ActionVolumeUp)
	kb := b.Key()

	assert.Equal(t, []string{"up", "k", "+"}, kb.Keys())
	assert.Equal(t, "↑/k/+", kb.Help().Key)
	assert.Equal(t, "Volume up", kb.Help().Desc)
}

func TestHelp(t *testing.T) {
	var h Help

	short := h.ShortHelp()
	assert.Len(t, short, 6)
	assert.Equal(t, "Start", short[0].Help().Desc)

	full := h.FullHelp()
	assert.Len(t, full, 3)
	total := 0
	for _, col := range full {
		total += len(col)
	}
	assert.Equal(t, len(All), total)
}
