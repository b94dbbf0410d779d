// roadrush is a lane-dodging driving game for the terminal.
//
// Usage:
//
//	roadrush play            - Drive
//	roadrush simulate        - Run a headless session and print a summary
//	roadrush config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--seed <value>        - Set RNG seed for reproducible traffic
//	--config <path>       - Use a custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is a top-down driving game. Steer between the lanes,
pick your speed and stay clear of the traffic coming at you.

Available commands:
  play      - Start driving
  simulate  - Let the autopilot drive without a terminal UI
  config    - Print the default config to start your own

Examples:
  roadrush play
  roadrush play --lanes 4 --seed 42
  roadrush simulate --frames 3600
  roadrush config > ~/.roadrush/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending. Without the flag, logs are
// discarded and the returned close func is a no-op.
func openLogFile() (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
