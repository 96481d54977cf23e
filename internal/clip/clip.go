// Package clip defines the clip descriptors played by the soundboard and the
// fixed ring-ordered queue that holds them.
package clip

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

var (
	// ErrEmptyQueue is returned when a queue is built without clips.
	ErrEmptyQueue = errors.New("queue has no clips")
	// ErrInvertedRange is returned when a clip does not end after it starts.
	ErrInvertedRange = errors.New("end must be after start")
	// ErrNegativeStart is returned when a clip starts before the file does.
	ErrNegativeStart = errors.New("start must not be negative")
	// ErrNoFile is returned when a clip has no file reference.
	ErrNoFile = errors.New("file is required")
)

// Clip is one entry of the queue: a section of an audio file.
// Clips are immutable once the queue is built.
type Clip struct {
	File  string        // file reference as configured
	Path  string        // resolved path on disk
	Label string        // optional display override
	Start time.Duration // offset where playback begins
	End   time.Duration // offset where playback is cut off
	Meta  *Meta         // tag metadata, nil when unreadable
}

// Length returns how long the clip plays.
func (c Clip) Length() time.Duration {
	return c.End - c.Start
}

// Name returns the text shown as the current song: the label when set,
// otherwise the configured file reference.
func (c Clip) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.File
}

// Validate checks the descriptor invariant end > start >= 0.
func (c Clip) Validate() error {
	if c.File == "" {
		return ErrNoFile
	}
	if c.Start < 0 {
		return ErrNegativeStart
	}
	if c.End <= c.Start {
		return ErrInvertedRange
	}
	return nil
}

// Resolve returns a copy of c with Path set relative to root.
// Absolute file references are kept as is.
func (c Clip) Resolve(root string) Clip {
	if filepath.IsAbs(c.File) || root == "" {
		c.Path = c.File
	} else {
		c.Path = filepath.Join(root, c.File)
	}
	return c
}

// Queue is an ordered, non-empty and fixed sequence of clips. Indexes wrap
// around in both directions.
type Queue struct {
	clips []Clip
}

// NewQueue validates clips and builds a queue from a copy of them.
func NewQueue(clips []Clip) (*Queue, error) {
	if len(clips) == 0 {
		return nil, ErrEmptyQueue
	}
	for i, c := range clips {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("clip %d (%s): %w", i+1, c.File, err)
		}
	}
	return &Queue{clips: append([]Clip(nil), clips...)}, nil
}

// Len returns the number of clips.
func (q *Queue) Len() int {
	return len(q.clips)
}

// At returns the clip at index i after wrapping.
func (q *Queue) At(i int) Clip {
	return q.clips[q.Wrap(i)]
}

// Wrap maps any integer onto [0, Len()).
func (q *Queue) Wrap(i int) int {
	n := len(q.clips)
	return ((i % n) + n) % n
}

// Clips returns a copy of the queue contents.
func (q *Queue) Clips() []Clip {
	return append([]Clip(nil), q.clips...)
}
