//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/rs/zerolog"
)

// Adapter serves the MPRIS interfaces on the session bus.
type Adapter struct {
	server *server.Server
	state  *snapshotStore
}

// New creates and starts an MPRIS adapter forwarding commands to send.
func New(send Sender, log zerolog.Logger) (*Adapter, error) {
	a := &Adapter{state: &snapshotStore{}}

	root := &rootAdapter{}
	player := &playerAdapter{send: send, state: a.state, art: FindAlbumArt}

	a.server = server.NewServer("soundboard", root, player)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Publish replaces the snapshot served to D-Bus clients.
func (a *Adapter) Publish(snap Snapshot) {
	a.state.set(snap)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
