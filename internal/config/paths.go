package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appDirName = "lazyhf"

const (
	ThemeFile       = "theme.toml"
	KeyBindingsFile = "key_bindings.toml"
	KeySymbolsFile  = "key_symbols.toml"
)

// ErrConfigDir reports that no configuration directory could be determined
// or created. It is the only configuration error that stops startup.
var ErrConfigDir = errors.New("cannot resolve config directory")

var (
	userConfigDir = os.UserConfigDir
	userHomeDir   = os.UserHomeDir
	goos          = runtime.GOOS
)

// ConfigDir returns the directory holding the configuration files. macOS uses
// ~/.config like other Unix systems rather than ~/Library/Application Support.
func ConfigDir() (string, error) {
	base, err := baseConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDir, err)
	}
	if strings.TrimSpace(base) == "" {
		return "", ErrConfigDir
	}
	return filepath.Join(base, appDirName), nil
}

func baseConfigDir() (string, error) {
	if goos == "darwin" {
		home, err := userHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config"), nil
	}
	return userConfigDir()
}

func expandPath(dir, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := userHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(dir, path), nil
}
