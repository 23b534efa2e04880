// fighter is a 2D side-scrolling platform fighter: one player, one AI enemy,
// a handful of platforms.
//
// Usage:
//
//	fighter                       - Play with the built-in configuration
//	fighter --config game.yaml    - Play with a custom configuration
//	fighter --record run.json     - Play and record inputs for replay
//	fighter replay run.json       - Run a recording headless and print the outcome
//
// Controls: arrows move, Space jumps, Z attacks, Esc pauses, R restarts
// after a clear, Q quits.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformfighter/internal/application/game"
	"github.com/younwookim/platformfighter/internal/application/match"
	"github.com/younwookim/platformfighter/internal/application/replay"
	"github.com/younwookim/platformfighter/internal/application/scene/playing"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
	"github.com/younwookim/platformfighter/internal/infrastructure/keyboard"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	flagRecord string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fighter",
	Short: "Platform Fighter - fight an AI enemy across floating platforms",
	Long: `Platform Fighter runs a fixed-tick 2D platform fighting match against
a single AI enemy that patrols, chases, attacks and retreats.

Controls:
  Left/Right  - Move
  Space       - Jump
  Z           - Attack
  Esc         - Pause
  R           - Restart (after clearing)
  Q           - Quit

Examples:
  fighter
  fighter --config ./arena.yaml
  fighter --record run.json
  fighter replay run.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to this replay file")

	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the process logger writing to w
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fighter",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// loadConfig loads the configuration named by --config
func loadConfig(logger *log.Logger) (*config.GameConfig, string, error) {
	source := flagConfig
	if source == "" {
		source = "embedded defaults"
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "source", source, "err", err)
		return nil, "", err
	}
	logger.Info("config loaded", "source", source)
	return cfg, source, nil
}

func runGame(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(logger)
	if err != nil {
		return err
	}

	m, err := match.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("failed to set up match", "err", err)
		return err
	}

	opts := playing.Options{
		ScreenW: cfg.Display.Width,
		ScreenH: cfg.Display.Height,
		Logger:  logger,
	}
	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(cfg, source)
		opts.RecordPath = flagRecord
		logger.Info("recording enabled", "path", flagRecord)
	}

	scn := playing.New(m, keyboard.NewSource(keyboard.DefaultBindings()), opts)
	g := game.New(scn, cfg.Display.Width, cfg.Display.Height)

	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(cfg.Display.Width*scale, cfg.Display.Height*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		return err
	}
	logger.Info("bye", "ticks", g.Ticks())
	return nil
}
