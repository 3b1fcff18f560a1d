// Package paths locates the calculator's configuration files.
//
// # Search Order
//
//	$CALC_CONFIG_DIR/config.{toml,yaml,yml}
//	<user config dir>/calcshell/config.{toml,yaml,yml}
//
// The user config dir is $XDG_CONFIG_HOME (or ~/.config) on Linux,
// ~/Library/Application Support on macOS and %AppData% on Windows.
//
// # Usage
//
//	if path, ok := paths.DefaultConfigFile(); ok {
//	    cfg, err = config.Load(path)
//	}
package paths
