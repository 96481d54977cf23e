package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// artExts are tried for per-clip art next to the audio file.
var artExts = []string{".jpg", ".png", ".jpeg"}

// FindAlbumArt looks for art for a clip file: first an image sharing the
// clip's base name (intro.mp3 -> intro.jpg), then a directory cover.
// Returns the path to the art file, or empty string if not found.
func FindAlbumArt(clipPath string) string {
	if clipPath == "" {
		return ""
	}
	base := strings.TrimSuffix(clipPath, filepath.Ext(clipPath))
	for _, ext := range artExts {
		if path := base + ext; exists(path) {
			return path
		}
	}

	dir := filepath.Dir(clipPath)
	for _, name := range coverNames {
		if path := filepath.Join(dir, name); exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
