// Package config loads the cubesim configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim"
)

// Config holds all cubesim settings.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Scramble  ScrambleConfig  `yaml:"scramble"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// AnimationConfig holds move animation settings.
type AnimationConfig struct {
	NormalSpeed float64 `yaml:"normal_speed"` // degrees per second
	FastSpeed   float64 `yaml:"fast_speed"`   // degrees per second
	FrameRate   int     `yaml:"frame_rate"`   // Hz
}

// ScrambleConfig holds scramble generation settings.
type ScrambleConfig struct {
	Length int    `yaml:"length"`
	Seed   uint64 `yaml:"seed"` // 0 means random
}

// StorageConfig holds session recording settings.
type StorageConfig struct {
	DBPath   string `yaml:"db_path"`
	Disabled bool   `yaml:"disabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultDir returns the cubesim directory in the user's home directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesim"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; an empty path reads the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyDefaults fills every unset field.
func (c *Config) applyDefaults() {
	if c.Animation.NormalSpeed == 0 {
		c.Animation.NormalSpeed = cubesim.DefaultNormalSpeed
	}
	if c.Animation.FastSpeed == 0 {
		c.Animation.FastSpeed = cubesim.DefaultFastSpeed
	}
	if c.Animation.FrameRate == 0 {
		c.Animation.FrameRate = 60
	}
	if c.Scramble.Length == 0 {
		c.Scramble.Length = cubesim.DefaultScrambleLength
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Animation.NormalSpeed < 0 || c.Animation.FastSpeed < 0 {
		return fmt.Errorf("animation speeds must be positive")
	}
	if c.Animation.FrameRate < 1 || c.Animation.FrameRate > 1000 {
		return fmt.Errorf("frame_rate %d out of range [1, 1000]", c.Animation.FrameRate)
	}
	if c.Scramble.Length < 0 {
		return fmt.Errorf("scramble length must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// FrameInterval returns the time between animation ticks.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FrameRate)
}

// DBPath returns the configured database path, falling back to the default
// location.
func (c *Config) DBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cubesim.db"), nil
}

// NewLogger builds a text logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
		log.SetLevel(level)
	}
	return log
}

// EngineOptions converts the configuration into engine options.
func (c *Config) EngineOptions(log logrus.FieldLogger) []cubesim.Option {
	opts := []cubesim.Option{
		cubesim.WithSpeeds(c.Animation.NormalSpeed, c.Animation.FastSpeed),
		cubesim.WithScrambleLength(c.Scramble.Length),
		cubesim.WithLogger(log),
	}
	if c.Scramble.Seed != 0 {
		opts = append(opts, cubesim.WithSeed(c.Scramble.Seed))
	}
	return opts
}
