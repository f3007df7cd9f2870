package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func stubPlatform(t *testing.T, platform string, configDir, homeDir func() (string, error)) {
	t.Helper()
	origGOOS, origConfig, origHome := goos, userConfigDir, userHomeDir
	t.Cleanup(func() {
		goos, userConfigDir, userHomeDir = origGOOS, origConfig, origHome
	})
	goos, userConfigDir, userHomeDir = platform, configDir, homeDir
}

func TestConfigDirUsesUserConfigDir(t *testing.T) {
	base := t.TempDir()
	stubPlatform(t, "linux",
		func() (string, error) { return base, nil },
		func() (string, error) { return "/unused", nil },
	)
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if want := filepath.Join(base, "lazyhf"); dir != want {
		t.Fatalf("unexpected dir: got=%q want=%q", dir, want)
	}
}

func TestConfigDirOnMacOSUsesDotConfig(t *testing.T) {
	home := t.TempDir()
	stubPlatform(t, "darwin",
		func() (string, error) { return "/Library/Application Support", nil },
		func() (string, error) { return home, nil },
	)
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if want := filepath.Join(home, ".config", "lazyhf"); dir != want {
		t.Fatalf("unexpected dir: got=%q want=%q", dir, want)
	}
}

func TestConfigDirFailureIsErrConfigDir(t *testing.T) {
	stubPlatform(t, "linux",
		func() (string, error) { return "", errors.New("$HOME is not defined") },
		func() (string, error) { return "", errors.New("$HOME is not defined") },
	)
	if _, err := ConfigDir(); !errors.Is(err, ErrConfigDir) {
		t.Fatalf("expected ErrConfigDir, got %v", err)
	}
	if _, err := Open(); !errors.Is(err, ErrConfigDir) {
		t.Fatalf("expected Open to fail with ErrConfigDir, got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	stubPlatform(t, "linux",
		func() (string, error) { return filepath.Join(home, ".config"), nil },
		func() (string, error) { return home, nil },
	)
	store, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	cases := map[string]string{
		"theme.toml":         filepath.Join(home, ".config", "lazyhf", "theme.toml"),
		"~/themes/dark.toml": filepath.Join(home, "themes", "dark.toml"),
		"/etc/lazyhf.toml":   "/etc/lazyhf.toml",
	}
	for name, want := range cases {
		got, err := store.ResolvePath(name)
		if err != nil {
			t.Fatalf("ResolvePath(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ResolvePath(%q) = %q, want %q", name, got, want)
		}
	}
	for _, blank := range []string{"", "  ", "\t"} {
		path, err := store.ThemePath(blank)
		if err != nil {
			t.Fatalf("ThemePath(%q): %v", blank, err)
		}
		if filepath.Base(path) != ThemeFile {
			t.Fatalf("ThemePath(%q) = %q, want the default theme file", blank, path)
		}
	}
	path, err := store.ThemePath(" night.toml ")
	if err != nil {
		t.Fatalf("ThemePath: %v", err)
	}
	if filepath.Base(path) != "night.toml" {
		t.Fatalf("expected the name to be trimmed, got %q", path)
	}
}

func TestResolvePathReportsUncreatableDir(t *testing.T) {
	fsys := newMemFS()
	fsys.mkdirErr = errors.New("read-only file system")
	store := NewStore("/cfg/lazyhf", WithFileSystem(fsys))
	if _, err := store.ResolvePath(ThemeFile); !errors.Is(err, ErrConfigDir) {
		t.Fatalf("expected ErrConfigDir, got %v", err)
	}
}
