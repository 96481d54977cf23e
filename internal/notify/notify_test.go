package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/soundboard/internal/clip"
)

type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNowPlaying(t *testing.T) {
	c := clip.Clip{File: "b.mp3", Path: "/nowhere/b.mp3", Label: "Chorus", End: time.Second}

	n := NowPlaying(c, 1, 3)

	assert.Equal(t, "Chorus", n.Title)
	assert.Equal(t, "Clip 2 of 3", n.Body)
	assert.Equal(t, UrgencyLow, n.Urgency)
	assert.Equal(t, int32(nowPlayingTimeout), n.Timeout)
}

func TestNowPlaying_WithMeta(t *testing.T) {
	c := clip.Clip{File: "b.mp3", Meta: &clip.Meta{Artist: "Band", Title: "Song"}}

	n := NowPlaying(c, 0, 1)

	assert.Equal(t, "Band - Song\nClip 1 of 1", n.Body)
}

func TestAnnouncer_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAnnouncer(rec)
	c := clip.Clip{File: "a.mp3"}

	require.NoError(t, a.Announce(c, 0, 2))
	require.NoError(t, a.Announce(c, 1, 2))

	require.Len(t, rec.sent, 2)
	assert.Equal(t, uint32(0), rec.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)

	require.NoError(t, a.Dismiss())
	assert.Equal(t, []uint32{2}, rec.closed)

	require.NoError(t, a.Dismiss())
	assert.Len(t, rec.closed, 1, "nothing left to dismiss")
}

func TestAnnouncer_Error(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("no server")}
	a := NewAnnouncer(rec)

	err := a.Announce(clip.Clip{File: "a.mp3"}, 0, 1)
	assert.Error(t, err)
}

func TestAnnouncer_Nop(t *testing.T) {
	a := NewAnnouncer(Nop{})

	require.NoError(t, a.Announce(clip.Clip{File: "a.mp3"}, 0, 1))
	require.NoError(t, a.Dismiss())
}
