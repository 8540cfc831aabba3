package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and check every configured level",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	_, levels, err := loadAll(flagConfigs)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	return validateLevels(levels, logger)
}

// validateLevels loads every level and logs the result of each.
// It keeps going after a failure and returns all failures joined.
func validateLevels(levels *config.LevelSet, logger *log.Logger) error {
	var errs []error
	for i := 0; i < levels.LevelCount(); i++ {
		level, err := levels.LoadLevel(i)
		if err == nil {
			err = level.Validate()
		}
		if err != nil {
			logger.Error("invalid level", "file", levels.Name(i), "err", err)
			errs = append(errs, err)
			continue
		}
		logger.Info("level ok",
			"file", levels.Name(i),
			"name", level.Name,
			"size", fmt.Sprintf("%dx%d", level.Width, level.Height),
			"gems", len(level.Gems),
			"enemies", len(level.SpikeBalls)+len(level.SpikeMen)+len(level.Clouds),
		)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d levels invalid: %w", len(errs), levels.LevelCount(), errors.Join(errs...))
	}
	return nil
}
