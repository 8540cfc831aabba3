// game runs the Gem Hop platformer.
//
// Usage:
//
//	game                     - Play in a window
//	game replay <file>       - Re-run a recorded session headless
//	game validate            - Load and check every configured level
//
// Global flags:
//
//	--configs <dir>  - Read settings and levels from a directory instead of the built-in set
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/gemhop/internal/infrastructure/config"
	"github.com/younwookim/gemhop/internal/infrastructure/logging"
)

var (
	// Global flags
	flagConfigs string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Gem Hop - a tile-based platformer",
	Long: `Gem Hop is a side-scrolling platformer: collect gems, avoid the
patrolling enemies and reach the flag at the end of every level.

Controls:
  left/right  walk
  space       jump
  r           restart after game over or victory
  g           toggle the tile grid
  esc         quit`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigs, "configs", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the current level when its file changes (needs --configs)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
}

func newLogger() *log.Logger {
	return logging.New(logging.Options{Debug: flagDebug, Prefix: "gemhop"})
}

// openConfigs returns a loader over dir, or over the embedded configs when dir is empty
func openConfigs(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(filepath.Join(dir, config.SettingsFile)); err != nil {
			return nil, fmt.Errorf("config directory %s: %w", dir, err)
		}
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, ""), nil
}

// loadAll opens the configs and reads settings and the level list
func loadAll(dir string) (*config.Settings, *config.LevelSet, error) {
	loader, err := openConfigs(dir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader.Levels(cfg.Levels), nil
}
