package main

import (
	"lazyhf/internal/config"
	"lazyhf/internal/keys"
	"lazyhf/internal/logging"
	"lazyhf/internal/theme"
)

// resolution is the configuration resolved at startup together with how each
// file was handled. outcomes follow configScopeOrder.
type resolution struct {
	store    *config.Store
	dir      string
	paths    configPaths
	theme    theme.Theme
	keys     *keys.KeyConfig
	outcomes []config.Outcome
}

type configPaths struct {
	theme    string
	bindings string
	symbols  string
}

func openStore(logger logging.Logger, opts ...config.Option) (*config.Store, error) {
	return config.Open(append([]config.Option{config.WithLogger(logger)}, opts...)...)
}

func locate(store *config.Store, themeFile string) (configPaths, error) {
	themePath, err := store.ThemePath(themeFile)
	if err != nil {
		return configPaths{}, err
	}
	bindings, symbols, err := store.KeyPaths()
	if err != nil {
		return configPaths{}, err
	}
	return configPaths{theme: themePath, bindings: bindings, symbols: symbols}, nil
}

// resolveAll loads every configuration file. Only a missing configuration
// directory is an error. Legacy files are converted in place unless opts
// include config.WithReadOnly.
func resolveAll(logger logging.Logger, themeFile string, opts ...config.Option) (resolution, error) {
	store, err := openStore(logger, opts...)
	if err != nil {
		return resolution{}, err
	}
	paths, err := locate(store, themeFile)
	if err != nil {
		return resolution{}, err
	}
	th, themeOutcome := store.ResolveTheme(paths.theme)
	keyConfig, keyOutcomes, err := store.ResolveKeyConfig()
	if err != nil {
		return resolution{}, err
	}
	return resolution{
		store:    store,
		dir:      store.Dir(),
		paths:    paths,
		theme:    th,
		keys:     keyConfig,
		outcomes: append([]config.Outcome{themeOutcome}, keyOutcomes...),
	}, nil
}

// outcome returns how the file behind scope was handled.
func (r resolution) outcome(scope string) config.Outcome {
	for i, candidate := range configScopeOrder {
		if candidate == scope && i < len(r.outcomes) {
			return r.outcomes[i]
		}
	}
	return config.Outcome{}
}
