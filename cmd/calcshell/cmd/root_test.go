package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/calcshell/internal/config"
	"github.com/GriffinCanCode/calcshell/internal/shared/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Display.Color = false
	return cfg
}

func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Cleanup(func() {
		cfgFile, logLevel, devMode, noColor, metricsFile = "", "", false, false, ""
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunShell(t *testing.T) {
	out := &bytes.Buffer{}
	err := runShell(context.Background(), quietConfig(), strings.NewReader("4\n2 ** 3\n0\n"), out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "CALCSHELL")
	assert.Contains(t, output, "2 ** 3  =  8")
	assert.Contains(t, output, "Goodbye!")
}

func TestRunShellBarMarker(t *testing.T) {
	cfg := quietConfig()
	cfg.Display.BarMarker = "#"

	out := &bytes.Buffer{}
	err := runShell(context.Background(), cfg, strings.NewReader("3\n1\n1\ndone\n0\n"), out)
	require.NoError(t, err)

	// 50% of the total draws 25 markers
	assert.Contains(t, out.String(), "50.00%  "+strings.Repeat("#", 25))
}

func TestRunShellExpressionLimit(t *testing.T) {
	cfg := quietConfig()
	cfg.Expression.MaxLength = 5

	out := &bytes.Buffer{}
	err := runShell(context.Background(), cfg, strings.NewReader("4\n1 + 2 + 3\n0\n"), out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: expression is too long")
}

func TestRunShellUnopenableLogOutput(t *testing.T) {
	cfg := quietConfig()
	cfg.Logging.Output = filepath.Join(t.TempDir(), "missing", "calcshell.log")

	// The session still runs on the default stderr logger
	out := &bytes.Buffer{}
	err := runShell(context.Background(), cfg, strings.NewReader("4\n6 // 4\n0\n"), out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "6 // 4  =  1")
}

func TestRunShellLogFile(t *testing.T) {
	cfg := quietConfig()
	cfg.Logging.Level = "info"
	cfg.Logging.Output = filepath.Join(t.TempDir(), "calcshell.log")

	err := runShell(context.Background(), cfg, strings.NewReader("0\n"), &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Logging.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Session ended")
}

func TestRunShellMetricsFile(t *testing.T) {
	cfg := quietConfig()
	cfg.Metrics.File = filepath.Join(t.TempDir(), "calcshell.prom")

	err := runShell(context.Background(), cfg, strings.NewReader("4\n1 / 0\n7\n0\n"), &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Metrics.File)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `calcshell_module_runs_total{module="expression"} 1`)
	assert.Contains(t, text, `calcshell_domain_errors_total{kind="division_by_zero",module="expression"} 1`)
	assert.Contains(t, text, `calcshell_menu_selections_total{valid="false"} 1`)
}

func TestRunShellLongInputLine(t *testing.T) {
	input := "4\n" + strings.Repeat("2*", 50000) + "1\n4\n3 - 1\n0\n"

	out := &bytes.Buffer{}
	err := runShell(context.Background(), quietConfig(), strings.NewReader(input), out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: expression is too long")
	assert.Contains(t, out.String(), "3 - 1  =  2")
}

func TestRootCommand(t *testing.T) {
	t.Run("runs until exit", func(t *testing.T) {
		output, err := executeRoot(t, "1\n6\n3\n0\n", "--no-color", "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, output, "A / B  =  2")
		assert.Contains(t, output, "Goodbye!")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		_, err := executeRoot(t, "", "--log-level", "loud")
		assert.Error(t, err)
	})

	t.Run("metrics file flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calcshell.prom")
		_, err := executeRoot(t, "1\n2\n3\n0\n", "--no-color", "--metrics-file", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `calcshell_module_runs_total{module="arithmetic"} 1`)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := executeRoot(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calcshell.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  bar_marker: \"*\"\nlogging:\n  level: error\n"), 0o644))

		output, err := executeRoot(t, "3\n2\n2\ndone\n0\n", "--config", path, "--no-color")
		require.NoError(t, err)
		assert.Contains(t, output, strings.Repeat("*", 25))
	})
}

func TestLoadConfigDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[display]\nbar_marker = \"=\"\n"), 0o644))

	t.Run("found without flag", func(t *testing.T) {
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "=", cfg.Display.BarMarker)
	})

	t.Run("flags override file", func(t *testing.T) {
		logLevel, noColor = "info", true
		t.Cleanup(func() { logLevel, noColor = "", false })

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.False(t, cfg.Display.Color)
	})
}

func TestVersionCommand(t *testing.T) {
	output, err := executeRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, output, "calcshell v"+Version)
	assert.Contains(t, output, "Go Version:")
}
