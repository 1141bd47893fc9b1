package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName  = "twich"
	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for twich:
// - $XDG_CONFIG_HOME/twich (default: ~/.config/twich)
// - $XDG_DATA_HOME/twich (default: ~/.local/share/twich)
// - $XDG_STATE_HOME/twich (default: ~/.local/state/twich)
// - $XDG_CACHE_HOME/twich (default: ~/.cache/twich)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: everything under ./.dev
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
			CacheHome:  filepath.Join(devDir, "cache"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	resolve := func(env string, fallback ...string) string {
		base := os.Getenv(env)
		if base == "" {
			base = filepath.Join(append([]string{homeDir}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}

	return &XDGDirs{
		ConfigHome: resolve("XDG_CONFIG_HOME", ".config"),
		DataHome:   resolve("XDG_DATA_HOME", ".local", "share"),
		StateHome:  resolve("XDG_STATE_HOME", ".local", "state"),
		CacheHome:  resolve("XDG_CACHE_HOME", ".cache"),
	}, nil
}

// GetConfigDir returns the XDG config directory for twich.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetLogDir returns the default directory for log files.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// ProfileDirs are the browser engine's persistent directories.
type ProfileDirs struct {
	Data        string
	Cache       string
	FilterStore string
}

// GetProfileDirs resolves the browser profile directories. A non-empty
// dataOverride replaces the default data directory.
func GetProfileDirs(dataOverride string) (ProfileDirs, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return ProfileDirs{}, err
	}
	data := dataOverride
	if data == "" {
		data = filepath.Join(dirs.DataHome, "webkit")
	}
	return ProfileDirs{
		Data:        data,
		Cache:       filepath.Join(dirs.CacheHome, "webkit"),
		FilterStore: filepath.Join(dirs.CacheHome, "content-filters"),
	}, nil
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return fmt.Errorf("resolve XDG directories: %w", err)
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
