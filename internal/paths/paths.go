// Package paths resolves the shipyard configuration directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDirName is the project-local config directory, relative to
// the working directory.
const DefaultConfigDirName = ".shipyard"

// EnvConfigDir overrides the config directory.
const EnvConfigDir = "SHIPYARD_CONFIG_DIR"

// appName is the directory name used under platform config roots.
const appName = "shipyard"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// UserConfigDir returns the platform-specific per-user configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/shipyard (fallback ~/.config/shipyard)
// macOS:   ~/Library/Application Support/shipyard
// Windows: %APPDATA%/shipyard
func UserConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SHIPYARD_CONFIG_DIR env > $(CWD)/.shipyard when it
// exists > UserConfigDir().
//
// Explicit values are made absolute. When nothing exists yet, the
// CWD-relative directory is returned so that init creates it there.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}

	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	local := filepath.Join(cwd, DefaultConfigDirName)
	if isDir(local) {
		return local, nil
	}

	user, err := UserConfigDir()
	if err == nil && isDir(user) {
		return user, nil
	}
	return local, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
