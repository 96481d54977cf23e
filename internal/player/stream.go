package player

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	// ErrNotLoaded is returned by PlayFrom when no file is loaded.
	ErrNotLoaded = errors.New("no file loaded")
	// ErrOffsetOutOfRange is returned when the start offset is past the end of the file.
	ErrOffsetOutOfRange = errors.New("offset beyond end of file")
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays one audio file at a time through the beep speaker.
type Player struct {
	state       State
	path        string
	file        *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	volumeLevel float64
}

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1.0,
	}
}

// Load opens and decodes path, replacing any loaded file.
func (p *Player) Load(path string) error {
	p.Stop()

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return err
	}

	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	return nil
}

// PlayFrom seeks the loaded file to offset and starts it.
func (p *Player) PlayFrom(offset time.Duration) error {
	if p.streamer == nil {
		return ErrNotLoaded
	}

	pos := p.format.SampleRate.N(offset)
	if pos < 0 {
		pos = 0
	}
	if length := p.streamer.Len(); length > 0 && pos >= length {
		return fmt.Errorf("%w: %s > %s", ErrOffsetOutOfRange, offset, p.format.SampleRate.D(length))
	}

	if err := initSpeaker(p.format.SampleRate); err != nil {
		return err
	}

	speaker.Clear()
	if err := p.streamer.Seek(pos); err != nil {
		return fmt.Errorf("seek to %s: %w", offset, err)
	}

	var playStreamer beep.Streamer = p.streamer
	if p.format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, p.format.SampleRate, speakerSampleRate, p.streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	p.state = Playing
	speaker.Play(p.volume)
	return nil
}

// initSpeaker opens the audio device once, at the rate of the first file.
func initSpeaker(rate beep.SampleRate) error {
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}
