// Package config loads maze generation settings from a .env file, the
// environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 16
	DefaultHeight = 16
)

// Output formats.
const (
	FormatASCII = "ascii"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Config holds generation options.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Enclose  bool    `yaml:"enclose"`

	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64 `yaml:"seed"`

	Format string `yaml:"format"`
	Output string `yaml:"output"` // empty means stdout
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: 2.0,
		Format:   FormatASCII,
	}
}

// Load builds a Config from defaults, then the YAML file named by
// MAZE_CONFIG, then MAZE_* environment variables. A missing .env file is
// not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not loaded: %v", err)
	}

	cfg := Default()
	if path, ok := os.LookupEnv("MAZE_CONFIG"); ok && path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks option values that the generator does not check itself.
func (c Config) Validate() error {
	switch c.Format {
	case FormatASCII, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("cell size must not be negative, got %v", c.CellSize)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	var err error
	if c.Width, err = envInt("MAZE_WIDTH", c.Width); err != nil {
		return err
	}
	if c.Height, err = envInt("MAZE_HEIGHT", c.Height); err != nil {
		return err
	}
	if c.Seed, err = envInt64("MAZE_SEED", c.Seed); err != nil {
		return err
	}
	if c.CellSize, err = envFloat("MAZE_CELL_SIZE", c.CellSize); err != nil {
		return err
	}
	if c.Enclose, err = envBool("MAZE_ENCLOSE", c.Enclose); err != nil {
		return err
	}
	c.Format = getEnvWithDefault("MAZE_FORMAT", c.Format)
	c.Output = getEnvWithDefault("MAZE_OUTPUT", c.Output)
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func envInt(key string, def int) (int, error) {
	v, err := envInt64(key, int64(def))
	return int(v), err
}

func envInt64(key string, def int64) (int64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return v, nil
}
