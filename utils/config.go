package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" env:"GOL_WIDTH"`
	Height              int           `json:"height" env:"GOL_HEIGHT"`
	Boundary            string        `json:"boundary" env:"GOL_BOUNDARY"`
	Pattern             string        `json:"pattern" env:"GOL_PATTERN"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"GOL_AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	Workers             int           `json:"workers" env:"GOL_WORKERS"`
	MaxGenerations      int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	RandomDensity       float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	Seed                int64         `json:"seed" env:"GOL_SEED"`
	Color               bool          `json:"color" env:"GOL_COLOR"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Boundary:            "wrapped",
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Workers:             1,
		MaxGenerations:      1000,
		RandomDensity:       0.5,
		Color:               true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides config fields with the GOL_* environment variables that are set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate checks the values the game cannot start with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d", c.Workers)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations %d", c.MaxGenerations)
	}
	if _, err := model.BoundaryFromName(c.Boundary); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if c.Pattern != "" {
		if _, err := model.Pattern(c.Pattern); err != nil {
			return errors.Wrap(err, "[Validate]")
		}
	}
	return nil
}
