// duopong is a two-paddle Pong for the terminal.
//
// Usage:
//
//	duopong [flags]
//
// Flags override values from the YAML config file (--config, or
// ./duopong.yaml when present).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diegok/duopong/internal/app"
	"github.com/diegok/duopong/internal/config"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagMute     bool
	flagVolume   float64
	flagAudioDir string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duopong",
	Short: "Two-paddle Pong in your terminal",
	Long: `duopong is a terminal Pong. W/S or the arrow keys move the paddles,
Q or Esc quits, R starts a new match once someone reaches 5 points.

Examples:
  duopong
  duopong --fps 120 --mute
  duopong --config ~/.config/duopong.yaml --log-file /tmp/duopong.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to YAML config (default ./"+config.DefaultFile+" if present)")
	f.IntVar(&flagFPS, "fps", config.DefaultFPS, "Frames per second")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed for serves (0 = random based on time)")
	f.BoolVar(&flagMute, "mute", false, "Disable sound")
	f.Float64Var(&flagVolume, "volume", config.DefaultVolume, "Sound volume from 0 to 1")
	f.StringVar(&flagAudioDir, "audio-dir", config.DefaultAudioDir, "Directory holding PongBall.wav and PongWinner.wav")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs while playing)")
	f.StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, closeLog, err := logOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "duopong",
		Level:           cfg.Level(),
	})

	if err := app.NewApp(cfg, logger).Run(); err != nil {
		logger.Error("exiting", "error", err)
		return err
	}
	return nil
}

// applyFlags copies explicitly set flags over the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if f.Changed("mute") {
		cfg.Mute = flagMute
	}
	if f.Changed("volume") {
		cfg.Volume = flagVolume
	}
	if f.Changed("audio-dir") {
		cfg.AudioDir = flagAudioDir
	}
	if f.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}

// logOutput opens the log file. Without one, logs are dropped because the
// terminal belongs to the game screen.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
