package main

import (
	"errors"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/gemhop/internal/application/game"
	"github.com/younwookim/gemhop/internal/application/replay"
	"github.com/younwookim/gemhop/internal/application/scene/playing"
	"github.com/younwookim/gemhop/internal/application/session"
	"github.com/younwookim/gemhop/internal/application/system"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
	"github.com/younwookim/gemhop/internal/infrastructure/watch"
)

var (
	flagRecord string
	flagWatch  bool
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, levels, err := loadAll(flagConfigs)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}

	sess, err := session.New(cfg, levels, logger)
	if err != nil {
		logger.Error("failed to start session", "err", err)
		return err
	}

	opts := playing.Options{
		Settings: cfg,
		Session:  sess,
		Input:    system.NewInputSystem(),
		Logger:   logger,
	}

	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(cfg.Levels)
		opts.RecordPath = flagRecord
		logger.Info("recording input", "path", flagRecord)
	}

	if flagWatch {
		w, err := watchLevels(levels)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()

		opts.Changes = w
		opts.LevelPath = func(i int) string {
			p, _ := levels.Loader().OnDisk(levels.Name(i))
			return p
		}
		logger.Info("watching level files for changes")
	}

	g := game.New(playing.New(opts), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	ebiten.SetWindowSize(
		int(float64(cfg.Display.ScreenWidth)*cfg.Display.Scale),
		int(float64(cfg.Display.ScreenHeight)*cfg.Display.Scale),
	)
	ebiten.SetWindowTitle("Gem Hop")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}

// watchLevels watches every directory holding a level file
func watchLevels(levels *config.LevelSet) (*watch.Watcher, error) {
	seen := make(map[string]bool)
	var dirs []string
	for i := 0; i < levels.LevelCount(); i++ {
		p, ok := levels.Loader().OnDisk(levels.Name(i))
		if !ok {
			return nil, errors.New("--watch needs --configs pointing at a directory")
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return watch.New(dirs...)
}
