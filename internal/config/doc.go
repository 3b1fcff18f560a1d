// Package config loads calculator configuration.
//
// Sources, lowest precedence first:
//   - Default(): built-in values
//   - an optional TOML (.toml) or YAML (.yaml, .yml) file
//   - environment variables (CALC_*)
//
// Command-line flags are applied on top by cmd/calcshell, which also picks
// the file from paths.DefaultConfigFile when --config is not given.
//
// Environment Variables:
//   - CALC_LOG_LEVEL: debug, info, warn, error (default: warn)
//   - CALC_LOG_DEV: console encoder with colors (default: false)
//   - CALC_LOG_OUTPUT: zap output path (default: stderr)
//   - CALC_COLOR: colored terminal output (default: true)
//   - CALC_BAR_MARKER: percentage bar character (default: █)
//   - CALC_EXPR_MAX_LENGTH: longest accepted expression (default: 1024)
//   - CALC_EXPR_MAX_DEPTH: deepest accepted nesting (default: 64)
//
// Example config.toml:
//
//	[logging]
//	level = "debug"
//
//	[display]
//	bar_marker = "#"
package config
