// Package config loads the soundboard configuration: the clip list, the
// directory the clips live in and the UI/desktop options.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/soundboard/internal/clip"
)

const appName = "soundboard"

// Stop modes select what End does to the session.
const (
	StopModeReset = "reset" // tear down and recreate the session
	StopModeStop  = "stop"  // keep the session, just stopped
)

type Config struct {
	DirectoryPath string  `koanf:"directory_path"`
	Volume        float64 `koanf:"volume" default:"0.5" validate:"gte=0,lte=1"`
	StopMode      string  `koanf:"stop_mode" default:"reset" validate:"oneof=reset stop"`
	Icons         string  `koanf:"icons" default:"unicode" validate:"oneof=nerd unicode none"` // "nerd", "unicode", or "none"

	Desktop DesktopConfig `koanf:"desktop"`
	Log     LogConfig     `koanf:"log"`

	Clips []ClipConfig `koanf:"clips"`
}

// DesktopConfig enables D-Bus integrations (Linux only).
type DesktopConfig struct {
	Mpris         bool `koanf:"mpris"`         // media keys and desktop widgets
	Notifications bool `koanf:"notifications"` // now-playing notifications
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File  string `koanf:"file"` // default: XDG state dir
}

// ClipConfig is one [[clips]] entry. Offsets are in seconds.
type ClipConfig struct {
	File  string  `koanf:"file" validate:"required"`
	Start float64 `koanf:"start" validate:"gte=0"`
	End   float64 `koanf:"end" validate:"gtfield=Start"`
	Label string  `koanf:"label"`
}

// Load reads the configuration. When path is empty the user config and
// ./config.toml are merged (last wins); otherwise only path is read.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, "read config %s", p)
				}
			}
		}
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set defaults")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg.DirectoryPath = expandPath(cfg.DirectoryPath)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/soundboard/config.toml
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ResolvedClips converts the configured entries to clip descriptors with
// paths joined to the directory.
func (c *Config) ResolvedClips() []clip.Clip {
	clips := make([]clip.Clip, len(c.Clips))
	for i, cc := range c.Clips {
		clips[i] = cc.toClip().Resolve(c.DirectoryPath)
	}
	return clips
}

// Queue resolves the clips, checks that every file exists and builds the
// playback queue. Missing files fail here, before any session starts.
func (c *Config) Queue() (*clip.Queue, error) {
	clips := c.ResolvedClips()
	for i, cl := range clips {
		info, err := os.Stat(cl.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "%s clip", humanize.Ordinal(i+1))
		}
		if info.IsDir() {
			return nil, errors.Newf("%s clip: %s is a directory", humanize.Ordinal(i+1), cl.Path)
		}
	}
	q, err := clip.NewQueue(clips)
	if err != nil {
		return nil, errors.Wrap(err, "build queue")
	}
	return q, nil
}

// ResetOnStop reports whether End recreates the whole session.
func (c *Config) ResetOnStop() bool {
	return c.StopMode != StopModeStop
}

func (cc ClipConfig) toClip() clip.Clip {
	return clip.Clip{
		File:  cc.File,
		Label: cc.Label,
		Start: seconds(cc.Start),
		End:   seconds(cc.End),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
