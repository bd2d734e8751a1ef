// Package config loads game settings from an optional file and HOGS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/carchrae/hogs/internal/game"
)

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// WindowConfig holds the initial window size.
type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// WaveConfig holds how many hogs of each variant spawn.
type WaveConfig struct {
	Swarm    int `json:"swarm" mapstructure:"swarm"`
	Stragler int `json:"stragler" mapstructure:"stragler"`
	Elite    int `json:"elite" mapstructure:"elite"`
}

// ObstacleConfig holds how many of each obstacle kind are scattered.
type ObstacleConfig struct {
	Bushes int `json:"bushes" mapstructure:"bushes"`
	Trees  int `json:"trees" mapstructure:"trees"`
	Cars   int `json:"cars" mapstructure:"cars"`
	Crates int `json:"crates" mapstructure:"crates"`
}

// Config is the full settings tree.
type Config struct {
	Seed      int64          `json:"seed" mapstructure:"seed"` // 0 = seed from the clock
	LogLevel  string         `json:"logLevel" mapstructure:"logLevel"`
	LogPretty bool           `json:"logPretty" mapstructure:"logPretty"`
	Audio     AudioConfig    `json:"audio" mapstructure:"audio"`
	Window    WindowConfig   `json:"window" mapstructure:"window"`
	Wave      WaveConfig     `json:"wave" mapstructure:"wave"`
	Obstacles ObstacleConfig `json:"obstacles" mapstructure:"obstacles"`
}

func setDefaults() {
	viper.SetDefault("seed", 0)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logPretty", true)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.6)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)

	viper.SetDefault("wave.swarm", 25)
	viper.SetDefault("wave.stragler", 12)
	viper.SetDefault("wave.elite", 8)

	viper.SetDefault("obstacles.bushes", 8)
	viper.SetDefault("obstacles.trees", 4)
	viper.SetDefault("obstacles.cars", 3)
	viper.SetDefault("obstacles.crates", 6)
}

// Load sets defaults, reads the config file at path when path is not empty,
// and applies HOGS_* environment overrides (HOGS_WAVE_ELITE=3 and so on).
func Load(path string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix("HOGS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Wave.Swarm < 0 || c.Wave.Stragler < 0 || c.Wave.Elite < 0 {
		errs = append(errs, errors.New("wave counts must not be negative"))
	}
	if c.Obstacles.Bushes < 0 || c.Obstacles.Trees < 0 || c.Obstacles.Cars < 0 || c.Obstacles.Crates < 0 {
		errs = append(errs, errors.New("obstacle counts must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f outside [0,1]", c.Audio.Volume))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// GameWave converts the wave settings for the simulation.
func (c Config) GameWave() game.WaveConfig {
	return game.WaveConfig{Swarm: c.Wave.Swarm, Stragler: c.Wave.Stragler, Elite: c.Wave.Elite}
}

// GameScatter converts the obstacle settings for the simulation.
func (c Config) GameScatter() game.ScatterConfig {
	return game.ScatterConfig{
		Bushes: c.Obstacles.Bushes,
		Trees:  c.Obstacles.Trees,
		Cars:   c.Obstacles.Cars,
		Crates: c.Obstacles.Crates,
	}
}

// GameOptions returns the simulation options these settings imply. A zero
// seed leaves seeding to the simulation.
func (c Config) GameOptions() []game.Option {
	opts := []game.Option{
		game.WithWave(c.GameWave()),
		game.WithScatter(c.GameScatter()),
	}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}
