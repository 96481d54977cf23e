// Package mpris exposes the soundboard to desktop media controls over the
// MPRIS D-Bus interface.
//
// D-Bus method calls arrive on their own goroutines. They never touch the
// session directly: commands are sent into the bubbletea program as
// CommandMsg, and property reads are answered from a Snapshot the app
// publishes after each update.
package mpris

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/sequencer"
)

// Command is a session command requested by a media controller.
type Command int

const (
	CommandBegin Command = iota
	CommandEnd
	CommandNext
	CommandPrevious
	CommandSetVolume
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandBegin:
		return "begin"
	case CommandEnd:
		return "end"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandSetVolume:
		return "set_volume"
	default:
		return "unknown"
	}
}

// CommandMsg carries a Command into the bubbletea program.
type CommandMsg struct {
	Command Command
	Volume  float64 // for CommandSetVolume
}

// Sender delivers messages to the program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Snapshot is the read-only session view served to D-Bus clients.
type Snapshot struct {
	Phase   sequencer.Phase
	Clip    clip.Clip
	HasClip bool
	Index   int
	Total   int
	Volume  float64
	Elapsed time.Duration
}

// snapshotStore guards the latest Snapshot.
type snapshotStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

func (s *snapshotStore) set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *snapshotStore) get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
