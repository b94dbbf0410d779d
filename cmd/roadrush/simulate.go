package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/draw"
	"github.com/vovakirdan/roadrush/internal/game"
)

var (
	flagFrames    int
	flagFrameMS   float64
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session",
	Long: `Run a session without a terminal UI on a simulated clock and print a
summary. With --autopilot (the default) a simple pilot changes lanes to
avoid traffic; without it the car drives straight ahead at the start speed.

The run stops at the first crash or after --frames frames.

Examples:
  roadrush simulate
  roadrush simulate --seed 7 --frames 36000
  roadrush simulate --autopilot=false --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to run")
	simulateCmd.Flags().Float64Var(&flagFrameMS, "frame-ms", 0, "Simulated time per frame in ms (0 = reference frame)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot steer")
	simulateCmd.Flags().IntVar(&flagLanes, "lanes", 0, "Number of lanes (0 = from config)")
}

// simResult summarizes a headless run.
type simResult struct {
	Seed       int64
	Frames     uint64
	Spawned    int
	Score      int
	Speed      int
	Crashed    bool
	CrashFrame uint64
}

// logHUD logs speed readout changes at debug level.
type logHUD struct {
	logger *log.Logger
	speed  int
	score  int
}

func (h *logHUD) SetSpeed(speed int) {
	if speed != h.speed {
		h.logger.Debug("speed", "value", speed, "score", h.score)
	}
	h.speed = speed
}

func (h *logHUD) SetScore(score int) {
	h.score = score
}

// simulate runs the driver on a manual clock until a crash or maxFrames.
func simulate(cfg config.Config, seed int64, maxFrames int, frameMS float64, pilot game.Pilot, logger *log.Logger) simResult {
	if frameMS <= 0 {
		frameMS = cfg.Loop.ReferenceFrame
	}

	hud := &logHUD{logger: logger}
	rec := draw.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)
	driver := game.NewDriver(cfg, game.NewRandomSource(seed, cfg.Traffic), rec, hud)
	if pilot != nil {
		driver.SetPilot(pilot)
	}

	clock := &game.ManualClock{}
	driver.Start(clock.Now())

	res := simResult{Seed: seed}
	for i := 0; i < maxFrames; i++ {
		clock.Advance(frameMS)
		driver.Tick(clock)

		if snap := driver.Snapshot(); snap.GameOver {
			res.Crashed = true
			res.CrashFrame = snap.Frame
			logger.Info("crash", "frame", snap.Frame, "score", hud.score, "speed", hud.speed)
			break
		}
	}

	snap := driver.Snapshot()
	res.Frames = snap.Frame
	res.Spawned = snap.Spawned
	res.Score = game.ScoreReadout(snap.Score)
	res.Speed = driver.SpeedReadout()
	return res
}

func runSimulate(cmd *cobra.Command, args []string) error {
	w := cmd.ErrOrStderr()
	if flagLogFile != "" {
		f, closeLog, err := openLogFile()
		if err != nil {
			return err
		}
		defer closeLog() //nolint:errcheck // Best-effort close of the log file
		w = f
	}
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
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var pilot game.Pilot
	if flagAutopilot {
		pilot = game.NewAutopilot(cfg.Tuning.Friction)
	}

	logger.Info("simulating", "seed", seed, "frames", flagFrames, "autopilot", flagAutopilot)
	res := simulate(cfg, seed, flagFrames, flagFrameMS, pilot, logger)
	logger.Info("done",
		"frames", res.Frames,
		"spawned", res.Spawned,
		"score", res.Score,
		"crashed", res.Crashed,
		"crash_frame", res.CrashFrame,
	)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed=%d frames=%d spawned=%d score=%d speed=%d crashed=%t\n",
		res.Seed, res.Frames, res.Spawned, res.Score, res.Speed, res.Crashed)
	return err
}
