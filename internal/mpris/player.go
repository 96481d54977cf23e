package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/soundboard/internal/sequencer"
)

const identity = "Soundboard"

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Control
// methods forward to the program; getters read the snapshot.
type playerAdapter struct {
	send  Sender
	state *snapshotStore
	art   func(path string) string
}

func (p *playerAdapter) command(c Command) error {
	p.send.Send(CommandMsg{Command: c})
	return nil
}

func (p *playerAdapter) Next() error {
	return p.command(CommandNext)
}

func (p *playerAdapter) Previous() error {
	return p.command(CommandPrevious)
}

// Pause has no session equivalent: clips pause on their own at the cutoff.
func (p *playerAdapter) Pause() error {
	return nil
}

// PlayPause starts a session when idle and is ignored otherwise.
func (p *playerAdapter) PlayPause() error {
	if p.state.get().Phase != sequencer.PhaseIdle {
		return nil
	}
	return p.command(CommandBegin)
}

func (p *playerAdapter) Stop() error {
	return p.command(CommandEnd)
}

func (p *playerAdapter) Play() error {
	return p.command(CommandBegin)
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.state.get().Phase {
	case sequencer.PhasePlaying:
		return types.PlaybackStatusPlaying, nil
	case sequencer.PhaseWaiting:
		return types.PlaybackStatusPaused, nil
	case sequencer.PhaseIdle:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.state.get()
	if !snap.HasClip || snap.Phase == sequencer.PhaseIdle {
		return types.Metadata{}, nil
	}
	c := snap.Clip

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(snap.Index, c.Path)),
		Length:      types.Microseconds(c.Length().Microseconds()),
		Title:       c.Name(),
		TrackNumber: snap.Index + 1,
	}
	if c.Meta != nil {
		if c.Meta.Artist != "" {
			meta.Artist = []string{c.Meta.Artist}
		}
		meta.Album = c.Meta.Album
	}

	if p.art != nil {
		if artPath := p.art(c.Path); artPath != "" {
			meta.ArtUrl = "file://" + artPath
		}
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.state.get().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send.Send(CommandMsg{Command: CommandSetVolume, Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.state.get().Elapsed.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.state.get().Phase != sequencer.PhaseIdle, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.state.get().Phase != sequencer.PhaseIdle, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.state.get().Total > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// formatTrackID derives a stable object path for the clip at index. The
// same file can appear at several positions, so both are hashed.
func formatTrackID(index int, path string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", index, path)
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
