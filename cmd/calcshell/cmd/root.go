package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/GriffinCanCode/calcshell/internal/app"
	"github.com/GriffinCanCode/calcshell/internal/config"
	"github.com/GriffinCanCode/calcshell/internal/console"
	"github.com/GriffinCanCode/calcshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calcshell/internal/logging"
	mathProvider "github.com/GriffinCanCode/calcshell/internal/providers/math"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/expression"
	"github.com/GriffinCanCode/calcshell/internal/shared/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	logLevel    string
	devMode     bool
	noColor     bool
	metricsFile string
)

// Banner shown when the session starts
var Banner = []string{
	"CALCSHELL  STATISTICAL CALCULATOR",
	"+  -  *  /  %  mean  median  mode  avg",
}

var rootCmd = &cobra.Command{
	Use:   "calcshell",
	Short: "Interactive console calculator",
	Long: `calcshell is an interactive console calculator.

Modules:
  1  Arithmetic  - every binary operator on two numbers
  2  Percentage  - X% of Y, ratio, percentage change
  3  Statistics  - sum, average, mean, median, modes, shares
  4  Expression  - restricted arithmetic expressions

Enter 0 at the main menu or close input (Ctrl+D) to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runShell(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "development logging (console encoder, debug level)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write session metrics in Prometheus text format to this file on exit")
}

// loadConfig layers command-line flags over the file and environment.
// Without --config the first file found by paths.DefaultConfigFile is used.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if found, ok := paths.DefaultConfigFile(); ok {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if devMode {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if logLevel != "" {
		if !logging.ValidLevel(logLevel) {
			return nil, fmt.Errorf("invalid log level %q", logLevel)
		}
		cfg.Logging.Level = logLevel
	}
	if noColor {
		cfg.Display.Color = false
	}
	if metricsFile != "" {
		cfg.Metrics.File = metricsFile
	}

	return cfg, cfg.Validate()
}

// runShell wires the session and runs the menu until exit
func runShell(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.NewOrDefault(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Output:      cfg.Logging.Output,
	})
	if err != nil {
		logger.Warn("Falling back to default logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	metrics := monitoring.NewMetrics()
	theme := console.NewTheme(out, console.ThemeOptions{
		Color:     cfg.Display.Color,
		BarMarker: cfg.Display.BarMarker,
	})
	prompter := console.NewPrompter(in, out, console.Options{
		Theme:         theme,
		Metrics:       metrics,
		MaxLineLength: max(console.DefaultMaxLineLength, cfg.Expression.MaxLength),
	})

	provider := mathProvider.NewProvider(mathProvider.Options{
		Expression: expression.Options{
			MaxInputLength: cfg.Expression.MaxLength,
			MaxDepth:       cfg.Expression.MaxDepth,
			Logger:         logger.Logger,
		},
	})

	menu := app.NewMenu(app.Options{
		Prompter: prompter,
		Math:     provider,
		Logger:   logger.Logger,
		Metrics:  metrics,
		Banner:   Banner,
	})
	for _, m := range app.DefaultModules() {
		if err := menu.Register(m); err != nil {
			return fmt.Errorf("failed to register module: %w", err)
		}
	}

	runErr := menu.Run(ctx)

	if cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.File); err != nil {
			logger.Warn("Metrics export failed", zap.String("path", cfg.Metrics.File), zap.Error(err))
		} else {
			logger.Debug("Metrics exported", zap.String("path", cfg.Metrics.File))
		}
	}
	return runErr
}
