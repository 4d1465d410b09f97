// Package paths resolves configuration and data locations and validates the
// catalog file paths a user types at the prompt or passes on the command line.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Application directory name under the platform config and data roots.
const appDirName = "cataloger"

// Environment variable names for overrides.
const (
	EnvConfigDir = "CATALOGER_CONFIG_DIR"
	EnvCatalog   = "CATALOGER_CATALOG"
)

// DefaultCatalogFile is the file name suggested for a first catalog.
const DefaultCatalogFile = "games.db"

// ErrNoCatalog is returned when no catalog path is set by flag, config, or env.
var ErrNoCatalog = errors.New("no catalog path set (use --catalog, config catalog, or " + EnvCatalog + ")")

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/cataloger (fallback ~/.config/cataloger)
// macOS:   ~/Library/Application Support/cataloger
// Windows: %APPDATA%/cataloger
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultDataDir returns the platform-specific default directory for catalogs.
//
// Linux:   $XDG_DATA_HOME/cataloger (fallback ~/.local/share/cataloger)
// macOS:   ~/Library/Application Support/cataloger
// Windows: %APPDATA%/cataloger
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CATALOGER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveCatalogPath returns the catalog file following the precedence chain:
// flag > configYAMLValue > CATALOGER_CATALOG env. It returns ErrNoCatalog when
// none is set.
func ResolveCatalogPath(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvCatalog); env != "" {
		return filepath.Abs(env)
	}
	return "", ErrNoCatalog
}
