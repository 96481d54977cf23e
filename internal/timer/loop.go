package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the bubbletea program when an armed delay elapses.
// The program must route it back to Loop.Fire.
type FiredMsg struct {
	Handle Handle
}

// Loop is a Scheduler bound to a bubbletea program. Arming queues a tea.Tick
// command that the caller collects with Drain after each Update; callbacks run
// inside Update when the FiredMsg comes back.
type Loop struct {
	next    Handle
	pending map[Handle]func()
	cmds    []tea.Cmd
}

// Verify Loop implements Scheduler at compile time.
var _ Scheduler = (*Loop)(nil)

// NewLoop creates an empty Loop.
func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]func())}
}

// After implements Scheduler.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	l.next++
	h := l.next
	l.pending[h] = fn
	l.cmds = append(l.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{Handle: h}
	}))
	return h
}

// Cancel implements Scheduler. The tick already in flight is left alone; its
// FiredMsg is dropped by Fire.
func (l *Loop) Cancel(h Handle) bool {
	if _, ok := l.pending[h]; !ok {
		return false
	}
	delete(l.pending, h)
	return true
}

// Armed implements Scheduler.
func (l *Loop) Armed() int {
	return len(l.pending)
}

// Fire runs the callback for msg if its handle is still pending.
// It reports whether a callback ran.
func (l *Loop) Fire(msg FiredMsg) bool {
	fn, ok := l.pending[msg.Handle]
	if !ok {
		return false
	}
	delete(l.pending, msg.Handle)
	fn()
	return true
}

// CancelAll disarms every pending callback.
func (l *Loop) CancelAll() {
	clear(l.pending)
}

// Drain returns the tick commands queued since the last Drain as a single
// batch, or nil when nothing was armed.
func (l *Loop) Drain() tea.Cmd {
	if len(l.cmds) == 0 {
		return nil
	}
	cmds := l.cmds
	l.cmds = nil
	return tea.Batch(cmds...)
}
