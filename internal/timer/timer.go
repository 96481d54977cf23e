// Package timer provides one-shot callbacks that run on the application's
// event loop and can be cancelled by handle.
//
// A cancelled handle never fires: Cancel removes the callback synchronously,
// and firing only ever happens on the same goroutine that calls Cancel.
package timer

import "time"

// Handle identifies an armed callback. The zero Handle is never issued and
// means "no timer".
type Handle uint64

// Scheduler arms and cancels one-shot callbacks.
type Scheduler interface {
	// After arms fn to run once after d and returns its handle.
	After(d time.Duration, fn func()) Handle
	// Cancel disarms h. It reports whether h was still pending.
	// Cancelling the zero Handle or an already fired handle is a no-op.
	Cancel(h Handle) bool
	// Armed returns the number of pending callbacks.
	Armed() int
}
