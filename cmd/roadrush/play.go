package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/platform/tui"
)

var flagLanes int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start driving",
	Long: `Start a Road Rush session in the terminal.

Controls:
  ←/→ or A/D   - Steer
  ↑/↓ or W/S   - Speed up / slow down
  R            - Restart
  Ctrl+S       - Save a screenshot to ~/.roadrush/screenshots
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a key counts as held while the
terminal keeps repeating it. If steering stutters when a key is held, your
system key-repeat delay is longer than loop.initial_hold_ms (700 ms by
default); raise it in your config.

Examples:
  roadrush play
  roadrush play --lanes 4
  roadrush play --config ./my-roadrush.yaml --log-file roadrush.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLanes, "lanes", 0, "Number of lanes (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagLanes > 0 {
		cfg.Road.LaneCount = flagLanes
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	width, height := 80, 24
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "fps", cfg.Loop.TickRate)

	return tui.Run(tui.Options{
		Config: cfg,
		Seed:   seed,
		Width:  width,
		Height: height,
		Logger: logger,
	})
}
