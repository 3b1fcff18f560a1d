package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/calcshell/internal/logging"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Logging    LogConfig        `toml:"logging" yaml:"logging"`
	Display    DisplayConfig    `toml:"display" yaml:"display"`
	Expression ExpressionConfig `toml:"expression" yaml:"expression"`
	Metrics    MetricsConfig    `toml:"metrics" yaml:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"CALC_LOG_LEVEL" toml:"level" yaml:"level"`
	Development bool   `envconfig:"CALC_LOG_DEV" toml:"development" yaml:"development"`
	Output      string `envconfig:"CALC_LOG_OUTPUT" toml:"output" yaml:"output"`
}

// DisplayConfig holds terminal rendering configuration.
type DisplayConfig struct {
	Color     bool   `envconfig:"CALC_COLOR" toml:"color" yaml:"color"`
	BarMarker string `envconfig:"CALC_BAR_MARKER" toml:"bar_marker" yaml:"bar_marker"`
}

// ExpressionConfig holds expression evaluator limits.
type ExpressionConfig struct {
	MaxLength int `envconfig:"CALC_EXPR_MAX_LENGTH" toml:"max_length" yaml:"max_length"`
	MaxDepth  int `envconfig:"CALC_EXPR_MAX_DEPTH" toml:"max_depth" yaml:"max_depth"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	// File receives the session metrics in Prometheus text format on exit.
	// Empty disables the export.
	File string `envconfig:"CALC_METRICS_FILE" toml:"file" yaml:"file"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
			Output:      "stderr",
		},
		Display: DisplayConfig{
			Color:     true,
			BarMarker: "█",
		},
		Expression: ExpressionConfig{
			MaxLength: 1024,
			MaxDepth:  64,
		},
	}
}

// Load builds configuration from defaults, then the optional file at path,
// then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Fields without a matching variable keep their current value
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid config: unknown log level %q", c.Logging.Level)
	}
	if c.Logging.Output == "" {
		return fmt.Errorf("invalid config: logging output cannot be empty")
	}
	if utf8.RuneCountInString(c.Display.BarMarker) != 1 {
		return fmt.Errorf("invalid config: bar marker must be a single character, got %q", c.Display.BarMarker)
	}
	if c.Expression.MaxLength <= 0 {
		return fmt.Errorf("invalid config: expression max length must be positive, got %d", c.Expression.MaxLength)
	}
	if c.Expression.MaxDepth <= 0 {
		return fmt.Errorf("invalid config: expression max depth must be positive, got %d", c.Expression.MaxDepth)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config file format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
