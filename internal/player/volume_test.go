package player

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVolume_ClampsAndStores(t *testing.T) {
	p := New()
	assert.InDelta(t, 1.0, p.Volume(), 1e-9)

	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{-0.3, 0},
		{1.7, 1},
	}
	for _, tt := range tests {
		p.SetVolume(tt.in)
		assert.InDelta(t, tt.want, p.Volume(), 1e-9, "SetVolume(%v)", tt.in)
	}
}

func TestLevelToVolume(t *testing.T) {
	assert.InDelta(t, 0.0, levelToVolume(1), 1e-9)
	assert.InDelta(t, -1.0, levelToVolume(0.5), 1e-9)
	assert.InDelta(t, -2.0, levelToVolume(0.25), 1e-9)
	assert.InDelta(t, -10.0, levelToVolume(0), 1e-9)
	assert.InDelta(t, math.Log2(0.7), levelToVolume(0.7), 1e-9)
}

func TestClampLevel(t *testing.T) {
	assert.InDelta(t, 0.0, ClampLevel(math.Inf(-1)), 1e-9)
	assert.InDelta(t, 1.0, ClampLevel(math.Inf(1)), 1e-9)
	assert.InDelta(t, 0.3, ClampLevel(0.3), 1e-9)
}
