package config

import (
	"strings"

	"lazyhf/internal/keys"
	"lazyhf/internal/theme"
)

// ThemePath resolves the theme file name given on the command line. A blank
// name selects ThemeFile.
func (s *Store) ThemePath(name string) (string, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = ThemeFile
	}
	return s.ResolvePath(name)
}

// LoadTheme resolves the theme stored at path. It always returns a usable
// theme.
func (s *Store) LoadTheme(path string) theme.Theme {
	th, _ := s.ResolveTheme(path)
	return th
}

// ResolveTheme is LoadTheme with a report of how the file was handled.
func (s *Store) ResolveTheme(path string) (theme.Theme, Outcome) {
	return Resolve(s, theme.Kind, path)
}

// KeyPaths returns the key binding and key symbol file locations.
func (s *Store) KeyPaths() (bindings, symbols string, err error) {
	if bindings, err = s.ResolvePath(KeyBindingsFile); err != nil {
		return "", "", err
	}
	if symbols, err = s.ResolvePath(KeySymbolsFile); err != nil {
		return "", "", err
	}
	return bindings, symbols, nil
}

// LoadKeyConfig resolves the key bindings and key symbols. Only a failure to
// locate the configuration directory is returned.
func (s *Store) LoadKeyConfig() (*keys.KeyConfig, error) {
	cfg, _, err := s.ResolveKeyConfig()
	return cfg, err
}

// ResolveKeyConfig is LoadKeyConfig with the outcomes of the key binding and
// key symbol files, in that order.
func (s *Store) ResolveKeyConfig() (*keys.KeyConfig, []Outcome, error) {
	bindings, symbols, err := s.KeyPaths()
	if err != nil {
		return nil, nil, err
	}
	list, listOutcome := Resolve(s, keys.KeysKind, bindings)
	syms, symsOutcome := Resolve(s, keys.SymbolsKind, symbols)
	return &keys.KeyConfig{Keys: list, Symbols: syms}, []Outcome{listOutcome, symsOutcome}, nil
}
