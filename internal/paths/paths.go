// Package paths resolves the configuration and data directories the CLI
// works against.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory names relative to the working directory.
const (
	DefaultConfigDirName = ".perkg"
	DefaultDataDirName   = ".perkg-db"
)

// Environment overrides.
const (
	EnvConfigDir = "PERKG_CONFIG_DIR"
	EnvDataDir   = "PERKG_DATA_DIR"
)

// appDirName is the per-application directory under the platform config root.
const appDirName = "perkg"

// platformDir holds the platform lookups, swapped out by tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform default configuration directory:
// $XDG_CONFIG_HOME/perkg on linux (falling back to ~/.config/perkg), and
// os.UserConfigDir()/perkg elsewhere (~/Library/Application Support on
// macOS, %APPDATA% on Windows).
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	return userConfigDir()
}

// DefaultDataDir returns the platform default data directory:
// $XDG_DATA_HOME/perkg on linux (falling back to ~/.local/share/perkg), and
// os.UserConfigDir()/perkg elsewhere.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	}
	return userConfigDir()
}

// xdgDir resolves an XDG base directory, preferring the environment variable
// and falling back to the conventional location under the home directory.
func xdgDir(envVar, homeRelative string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRelative, appDirName), nil
}

func userConfigDir() (string, error) {
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir picks the configuration directory: an explicit flag wins,
// then PERKG_CONFIG_DIR, then the platform default. Relative paths are made
// absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory: an explicit flag wins, then the
// config.yaml value, then PERKG_DATA_DIR, then $(CWD)/.perkg-db. The
// working-directory default keeps a checkout self-contained: running the CLI
// inside a directory keeps that directory's catalog next to it.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, dir := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
