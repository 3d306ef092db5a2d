package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "FRAMEFLUX_CONFIG"

// DefaultPath is $XDG_CONFIG_HOME/frameflux/config.toml, with
// ~/.config standing in for an unset XDG_CONFIG_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "frameflux", "config.toml")
}

// SearchPaths lists the locations Discover checks, in order.
func SearchPaths() []string {
	return []string{"./config.toml", DefaultPath(), "/etc/frameflux/config.toml"}
}

// Discover returns the config file to load. FRAMEFLUX_CONFIG wins and
// must exist; otherwise the first existing entry of SearchPaths is used.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, p, err)
		}
		return p, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
