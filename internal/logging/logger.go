package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultOutput keeps logs off stdout, where the calculator prompts
const DefaultOutput = "stderr"

// Logger wraps zap.Logger for a calculator session.
type Logger struct {
	*zap.Logger
}

// Config selects the level, encoder and destination of session logs.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool   // console encoder with colors and stack traces
	Output      string // zap sink: "stderr", "stdout" or a file path
}

// DefaultConfig returns the interactive logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Output: DefaultOutput,
	}
}

// New builds a logger for cfg. An empty Output means stderr.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == "" {
		output = DefaultOutput
	}

	encoding := "json"
	if cfg.Development {
		encoding = "console"
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{DefaultOutput},
		DisableStacktrace: !cfg.Development,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %q: %w", output, err)
	}
	return &Logger{Logger: logger}, nil
}

// NewOrDefault builds a logger for cfg, falling back to the default stderr
// logger when cfg cannot be opened. The error explains the fallback and is
// nil when cfg was used.
func NewOrDefault(cfg Config) (*Logger, error) {
	logger, err := New(cfg)
	if err == nil {
		return logger, nil
	}
	return NewDefault(), err
}

// NewDefault creates a logger with DefaultConfig, or a no-op logger if even
// stderr cannot be opened.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		return NewNop()
	}
	return logger
}

// NewNop creates a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel converts a level name such as "warn" to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

// ValidLevel reports whether level names a zap level.
func ValidLevel(level string) bool {
	_, err := ParseLevel(level)
	return err == nil
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeDuration = zapcore.StringDurationEncoder
		return cfg
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}
