package timer

import (
	"sort"
	"time"
)

// Fake is a manually driven Scheduler for tests. Time only moves when
// Advance is called.
type Fake struct {
	now     time.Duration
	next    Handle
	entries map[Handle]*fakeEntry
	fired   int
}

type fakeEntry struct {
	handle   Handle
	deadline time.Duration
	delay    time.Duration
	fn       func()
}

// Verify Fake implements Scheduler at compile time.
var _ Scheduler = (*Fake)(nil)

// NewFake creates a Fake at time zero.
func NewFake() *Fake {
	return &Fake{entries: make(map[Handle]*fakeEntry)}
}

func (f *Fake) After(d time.Duration, fn func()) Handle {
	f.next++
	h := f.next
	f.entries[h] = &fakeEntry{handle: h, deadline: f.now + d, delay: d, fn: fn}
	return h
}

func (f *Fake) Cancel(h Handle) bool {
	if _, ok := f.entries[h]; !ok {
		return false
	}
	delete(f.entries, h)
	return true
}

func (f *Fake) Armed() int { return len(f.entries) }

// Advance moves the clock forward by d, firing due callbacks in deadline
// order. Callbacks armed while advancing fire too if they fall due.
func (f *Fake) Advance(d time.Duration) {
	target := f.now + d
	for {
		e := f.earliest()
		if e == nil || e.deadline > target {
			break
		}
		f.now = e.deadline
		delete(f.entries, e.handle)
		f.fired++
		e.fn()
	}
	f.now = target
}

// Now returns the fake elapsed time.
func (f *Fake) Now() time.Duration { return f.now }

// Fired returns how many callbacks have run.
func (f *Fake) Fired() int { return f.fired }

// Delays returns the delays of all pending callbacks, shortest first.
func (f *Fake) Delays() []time.Duration {
	delays := make([]time.Duration, 0, len(f.entries))
	for _, e := range f.entries {
		delays = append(delays, e.delay)
	}
	sort.Slice(delays, func(i, j int) bool { return delays[i] < delays[j] })
	return delays
}

// Pending reports whether h is still armed.
func (f *Fake) Pending(h Handle) bool {
	_, ok := f.entries[h]
	return ok
}

func (f *Fake) earliest() *fakeEntry {
	var best *fakeEntry
	for _, e := range f.entries {
		if best == nil || e.deadline < best.deadline ||
			(e.deadline == best.deadline && e.handle < best.handle) {
			best = e
		}
	}
	return best
}
