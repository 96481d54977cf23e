package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/soundboard/internal/app"
	"github.com/llehouerou/soundboard/internal/clip"
	"github.com/llehouerou/soundboard/internal/config"
	"github.com/llehouerou/soundboard/internal/errmsg"
	"github.com/llehouerou/soundboard/internal/icons"
	"github.com/llehouerou/soundboard/internal/logger"
	"github.com/llehouerou/soundboard/internal/mpris"
	"github.com/llehouerou/soundboard/internal/notify"
	"github.com/llehouerou/soundboard/internal/player"
	"github.com/llehouerou/soundboard/internal/stderr"
)

var (
	cli        = kingpin.New("soundboard", "Play a fixed list of audio clips from the terminal")
	configPath = cli.Flag("config", "Config file (default: XDG config dir, then ./config.toml)").Short('c').String()
	verbose    = cli.Flag("verbose", "Log at debug level").Short('v').Bool()
	logFile    = cli.Flag("logfile", "Log file path").String()

	playCmd  = cli.Command("play", "Run the soundboard").Default()
	checkCmd = cli.Command("check", "Validate the configuration and list the clips")
	filesCmd = cli.Command("files", "List audio files in the clip directory")
	filesDir = filesCmd.Arg("dir", "Directory to list instead of directory_path").ExistingDir()
)

func main() {
	command := kingpin.MustParse(cli.Parse(os.Args[1:]))

	var err error
	switch command {
	case playCmd.FullCommand():
		err = play()
	case checkCmd.FullCommand():
		err = check()
	case filesCmd.FullCommand():
		err = files()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, errors.Wrap(err, string(errmsg.OpConfigLoad))
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	return cfg, nil
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	q, err := cfg.Queue()
	if err != nil {
		return err
	}
	q, err = clip.NewQueue(clip.WithMeta(q.Clips()))
	if err != nil {
		return err
	}

	w, err := logger.Init(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return errors.Wrap(err, string(errmsg.OpInitialize))
	}
	defer w.Close()
	log := zlog.Logger

	if err := stderr.Start(log); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	opts := app.Options{
		Volume:     cfg.Volume,
		ResetOnEnd: cfg.ResetOnStop(),
		Logger:     log,
	}

	sender := &programSender{}
	if cfg.Desktop.Mpris {
		adapter, err := mpris.New(sender, log)
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMprisStart, err))
		} else {
			defer adapter.Close()
			opts.Publisher = adapter
		}
	}
	if cfg.Desktop.Notifications {
		n, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("notifications unavailable")
		} else {
			announcer := notify.NewAnnouncer(n)
			defer func() { _ = announcer.Dismiss() }()
			opts.Announcer = announcer
		}
	}

	log.Info().
		Int("clips", q.Len()).
		Str("stop_mode", cfg.StopMode).
		Float64("volume", cfg.Volume).
		Msg("starting")

	m := app.New(q, player.New(), opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	sender.program.Store(p)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return errors.Wrap(err, "run")
	}
	log.Info().Msg("exiting")
	return nil
}

// programSender forwards media control messages once the program exists.
// Messages sent before that are dropped.
type programSender struct {
	program atomic.Pointer[tea.Program]
}

func (s *programSender) Send(msg tea.Msg) {
	if p := s.program.Load(); p != nil {
		p.Send(msg)
	}
}

func check() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	q, err := cfg.Queue()
	if err != nil {
		return err
	}

	t := table.New().Headers("#", "File", "Start", "End", "Length", "Label")
	for i, c := range q.Clips() {
		t.Row(
			fmt.Sprint(i+1),
			c.File,
			formatSeconds(c.Start),
			formatSeconds(c.End),
			formatSeconds(c.Length()),
			c.Label,
		)
	}
	fmt.Println(t)
	fmt.Printf("%d clips, stop mode %q, volume %.0f%%\n", q.Len(), cfg.StopMode, cfg.Volume*100)
	return nil
}

func files() error {
	dir := *filesDir
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir = cfg.DirectoryPath
	}
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "read %s", dir)
	}

	t := table.New().Headers("File", "Size", "Duration")
	count := 0
	for _, e := range entries {
		if e.IsDir() || !player.IsAudioFile(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		length := "?"
		if d, err := player.Probe(filepath.Join(dir, e.Name())); err == nil {
			length = formatSeconds(d)
		}
		t.Row(e.Name(), humanize.Bytes(uint64(info.Size())), length) //nolint:gosec // sizes are non-negative
		count++
	}
	if count == 0 {
		fmt.Printf("No audio files in %s\n", dir)
		return nil
	}
	fmt.Println(t)
	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
