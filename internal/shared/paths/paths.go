package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory
const AppName = "calcshell"

// ConfigDirEnv overrides the configuration directory
const ConfigDirEnv = "CALC_CONFIG_DIR"

// ConfigBaseName is the file name searched for, without extension
const ConfigBaseName = "config"

// ConfigExtensions lists supported config file extensions in preference order
var ConfigExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the directory searched for configuration files
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// ConfigCandidates returns every config file path in search order
func ConfigCandidates() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(ConfigExtensions))
	for _, ext := range ConfigExtensions {
		candidates = append(candidates, filepath.Join(dir, ConfigBaseName+ext))
	}
	return candidates, nil
}

// DefaultConfigFile returns the first existing config file, if any
func DefaultConfigFile() (string, bool) {
	candidates, err := ConfigCandidates()
	if err != nil {
		return "", false
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
