package timer

import (
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestLoop_FireRunsPendingCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := NewLoop()
		ran := 0
		h := l.After(time.Second, func() { ran++ })
		assert.Equal(t, 1, l.Armed())

		start := time.Now()
		msgs := collect(l.Drain())
		require.Len(t, msgs, 1)
		assert.Equal(t, time.Second, time.Since(start))

		fired, ok := msgs[0].(FiredMsg)
		require.True(t, ok)
		assert.Equal(t, h, fired.Handle)

		assert.True(t, l.Fire(fired))
		assert.Equal(t, 1, ran)
		assert.Equal(t, 0, l.Armed())

		// Second delivery of the same message is ignored.
		assert.False(t, l.Fire(fired))
		assert.Equal(t, 1, ran)
	})
}

func TestLoop_CancelledHandleNeverFires(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := NewLoop()
		ran := false
		h := l.After(500*time.Millisecond, func() { ran = true })
		cmd := l.Drain()

		assert.True(t, l.Cancel(h))
		assert.False(t, l.Cancel(h), "second cancel reports nothing pending")

		for _, msg := range collect(cmd) {
			l.Fire(msg.(FiredMsg))
		}
		assert.False(t, ran)
	})
}

func TestLoop_DrainEmptyReturnsNil(t *testing.T) {
	l := NewLoop()
	assert.Nil(t, l.Drain())

	l.After(time.Second, func() {})
	assert.NotNil(t, l.Drain())
	assert.Nil(t, l.Drain(), "drain clears queued commands")
}

func TestLoop_HandlesAreUnique(t *testing.T) {
	l := NewLoop()
	seen := make(map[Handle]bool)
	for range 100 {
		h := l.After(time.Second, func() {})
		assert.NotZero(t, h)
		assert.False(t, seen[h])
		seen[h] = true
	}
}

func TestLoop_CancelAll(t *testing.T) {
	l := NewLoop()
	a := l.After(time.Second, func() { t.Error("a fired") })
	b := l.After(2*time.Second, func() { t.Error("b fired") })
	l.CancelAll()

	assert.Equal(t, 0, l.Armed())
	assert.False(t, l.Fire(FiredMsg{Handle: a}))
	assert.False(t, l.Fire(FiredMsg{Handle: b}))
}

func TestLoop_CancelZeroHandle(t *testing.T) {
	l := NewLoop()
	assert.False(t, l.Cancel(0))
}
