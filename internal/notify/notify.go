// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"sync"

	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/mpris"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a clip notification stays up, in ms.
const nowPlayingTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying builds the notification for clip c at position index of total.
func NowPlaying(c clip.Clip, index, total int) Notification {
	body := fmt.Sprintf("Clip %d of %d", index+1, total)
	if sub := c.Meta.Subtitle(); sub != "" {
		body = sub + "\n" + body
	}
	return Notification{
		Title:   c.Name(),
		Body:    body,
		Icon:    mpris.FindAlbumArt(c.Path),
		Timeout: nowPlayingTimeout,
		Urgency: UrgencyLow,
	}
}

// Announcer shows one notification per clip change, replacing the previous
// one instead of stacking them. Safe for concurrent use.
type Announcer struct {
	notifier Notifier

	mu   sync.Mutex
	last uint32
}

// NewAnnouncer wraps n.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{notifier: n}
}

// Announce sends the now-playing notification for c.
func (a *Announcer) Announce(c clip.Clip, index, total int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := NowPlaying(c, index, total)
	n.ReplacesID = a.last
	id, err := a.notifier.Notify(n)
	if err != nil {
		return err
	}
	a.last = id
	return nil
}

// Dismiss closes the last notification, if any.
func (a *Announcer) Dismiss() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last == 0 {
		return nil
	}
	id := a.last
	a.last = 0
	return a.notifier.Close(id)
}
