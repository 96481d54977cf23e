package clip

import (
	"os"

	"github.com/dhowden/tag"
)

// Meta holds the tag fields shown next to a clip.
type Meta struct {
	Title  string
	Artist string
	Album  string
	Year   int
}

// ReadMeta reads tag metadata from the audio file at path.
func ReadMeta(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	return &Meta{
		Title:  m.Title(),
		Artist: artist,
		Album:  m.Album(),
		Year:   m.Year(),
	}, nil
}

// WithMeta returns a copy of clips with Meta filled from their files.
// Files without readable tags keep a nil Meta.
func WithMeta(clips []Clip) []Clip {
	out := make([]Clip, len(clips))
	for i, c := range clips {
		if meta, err := ReadMeta(c.Path); err == nil {
			c.Meta = meta
		}
		out[i] = c
	}
	return out
}

// Subtitle returns "Artist - Title" from the tags, or the part that exists.
func (m *Meta) Subtitle() string {
	if m == nil {
		return ""
	}
	switch {
	case m.Artist != "" && m.Title != "":
		return m.Artist + " - " + m.Title
	case m.Title != "":
		return m.Title
	default:
		return m.Artist
	}
}
