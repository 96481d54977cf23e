package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpClipLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "clip load error",
			op:       OpClipLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load clip: file not found",
		},
		{
			name:     "configuration error",
			op:       OpConfigLoad,
			err:      errors.New("bad toml"),
			expected: "Failed to load configuration: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpClipLoad,
			context:  "a.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpClipLoad,
			context:  "a.mp3",
			err:      errors.New("unsupported format: .ogg"),
			expected: "Failed to load clip 'a.mp3': unsupported format: .ogg",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpClipPlay,
			context:  "",
			err:      errors.New("device busy"),
			expected: "Failed to play clip: device busy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
