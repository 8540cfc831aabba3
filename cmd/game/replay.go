package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/gemhop/internal/application/replay"
	"github.com/younwookim/gemhop/internal/application/session"
	"github.com/younwookim/gemhop/internal/application/state"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a window",
	Long: `Feeds a recording made with --record through a fresh session, one
recorded input per tick, and reports where the session ended up.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// replaySummary is the session state after a replay
type replaySummary struct {
	Frames int
	Stage  state.GameState
	Level  int
	Hearts int
	Gems   int
	Score  int
	X, Y   float64
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	loader, err := openConfigs(flagConfigs)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	cfg, err := loader.LoadSettings()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		logger.Error("failed to load replay", "path", args[0], "err", err)
		return err
	}

	sum, err := replayData(cfg, loader, *data, logger)
	if err != nil {
		logger.Error("replay failed", "err", err)
		return err
	}

	logger.Info("replay finished",
		"frames", sum.Frames,
		"stage", sum.Stage,
		"level", sum.Level,
		"hearts", sum.Hearts,
		"gems", sum.Gems,
		"score", sum.Score,
		"x", sum.X,
		"y", sum.Y,
	)
	return nil
}

// replayData runs a recording over the levels it was made with, falling
// back to the configured list for recordings that did not store one
func replayData(cfg *config.Settings, loader *config.Loader, data replay.ReplayData, logger *log.Logger) (replaySummary, error) {
	names := data.Levels
	if len(names) == 0 {
		names = cfg.Levels
	}

	sess, err := session.New(cfg, loader.Levels(names), logger)
	if err != nil {
		return replaySummary{}, err
	}

	frames, err := replay.NewReplayer(data).Play(sess)
	if err != nil {
		return replaySummary{}, err
	}

	h := sess.Hero()
	return replaySummary{
		Frames: frames,
		Stage:  sess.Stage(),
		Level:  sess.CurrentLevel(),
		Hearts: h.Hearts,
		Gems:   h.Gems,
		Score:  h.Score,
		X:      h.X,
		Y:      h.Y,
	}, nil
}
