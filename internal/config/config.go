package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Default values for configuration
const (
	DefaultFPS      = 60
	DefaultVolume   = 0.75
	DefaultAudioDir = "audio"
	DefaultLogLevel = "info"
	DefaultFile     = "duopong.yaml"

	MaxFPS = 240
)

// Config holds the runtime settings. Court and physics constants are
// fixed in the game package and are not configurable.
type Config struct {
	FPS      int     `yaml:"fps"`
	Seed     int64   `yaml:"seed"`
	Mute     bool    `yaml:"mute"`
	Volume   float64 `yaml:"volume"`
	AudioDir string  `yaml:"audio_dir"`
	LogFile  string  `yaml:"log_file"`
	LogLevel string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		FPS:      DefaultFPS,
		Volume:   DefaultVolume,
		AudioDir: DefaultAudioDir,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from path. An empty path falls back to
// DefaultFile in the working directory, and to defaults when that is missing.
// Fields absent from the file keep their default values. The result is not
// validated so command line flags can still override it; call Validate after.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field is in range
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if !(c.Volume >= 0 && c.Volume <= 1) {
		return fmt.Errorf("volume must be between 0 and 1, got %v", c.Volume)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, assuming Validate passed
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
