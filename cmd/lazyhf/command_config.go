package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lazyhf/internal/config"
	"lazyhf/internal/keys"
	"lazyhf/internal/theme"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
	configFormatYAML = "yaml"

	configScopeTheme   = "theme"
	configScopeKeys    = "keys"
	configScopeSymbols = "symbols"
)

var configScopeOrder = []string{configScopeTheme, configScopeKeys, configScopeSymbols}

type configOutput struct {
	ThemePath       string           `json:"theme_path,omitempty" toml:"theme_path,omitempty" yaml:"theme_path,omitempty"`
	KeyBindingsPath string           `json:"key_bindings_path,omitempty" toml:"key_bindings_path,omitempty" yaml:"key_bindings_path,omitempty"`
	KeySymbolsPath  string           `json:"key_symbols_path,omitempty" toml:"key_symbols_path,omitempty" yaml:"key_symbols_path,omitempty"`
	Theme           *theme.Theme     `json:"theme,omitempty" toml:"theme,omitempty" yaml:"theme,omitempty"`
	KeyBindings     *keys.KeysList   `json:"key_bindings,omitempty" toml:"key_bindings,omitempty" yaml:"key_bindings,omitempty"`
	KeySymbols      *keys.KeySymbols `json:"key_symbols,omitempty" toml:"key_symbols,omitempty" yaml:"key_symbols,omitempty"`
}

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and convert the configuration files",
	}
	cmd.AddCommand(
		newConfigShowCommand(root),
		newConfigDiffCommand(root),
		newConfigMigrateCommand(root),
		newConfigWriteCommand(root),
	)
	return cmd
}

func newConfigShowCommand(root *rootOptions) *cobra.Command {
	var (
		defaults bool
		format   string
		scopes   []string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective (or default) configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedFormat, err := resolveConfigFormat(format)
			if err != nil {
				return err
			}
			resolvedScopes, err := resolveConfigScopes(scopes)
			if err != nil {
				return err
			}
			payload, err := buildConfigOutput(root, defaults, resolvedScopes)
			if err != nil {
				return err
			}
			return writeConfigOutput(cmd.OutOrStdout(), resolvedFormat, projectedConfigPayload(payload, resolvedScopes))
		},
	}
	cmd.Flags().BoolVar(&defaults, "default", false, "print default values without reading any file")
	cmd.Flags().StringVar(&format, "format", configFormatTOML, "output format: toml|json|yaml")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scope to print: theme|keys|symbols|all (repeatable)")
	return cmd
}

func newConfigDiffCommand(root *rootOptions) *cobra.Command {
	var scopes []string
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Print the patch files that represent the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedScopes, err := resolveConfigScopes(scopes)
			if err != nil {
				return err
			}
			res, err := loadForCommand(root)
			if err != nil {
				return err
			}
			paths := res.paths
			out := cmd.OutOrStdout()
			first := true
			for _, scope := range configScopeOrder {
				if !scopeSelected(resolvedScopes, scope) {
					continue
				}
				var path string
				var data []byte
				switch scope {
				case configScopeTheme:
					path = paths.theme
					data, err = theme.Kind.Encode(res.theme)
				case configScopeKeys:
					path = paths.bindings
					data, err = keys.KeysKind.Encode(res.keys.Keys)
				case configScopeSymbols:
					path = paths.symbols
					data, err = keys.SymbolsKind.Encode(res.keys.Symbols)
				}
				if err != nil {
					return err
				}
				if !first {
					fmt.Fprintln(out)
				}
				first = false
				fmt.Fprintf(out, "# %s\n", path)
				if _, err := out.Write(data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scope to print: theme|keys|symbols|all (repeatable)")
	return cmd
}

func newConfigMigrateCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Convert legacy configuration files to patches and report each file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := loadForCommand(root)
			if err != nil {
				return err
			}
			failed := printOutcomes(cmd.OutOrStdout(), res.outcomes)
			if failed > 0 {
				return fmt.Errorf("%d configuration file(s) could not be used", failed)
			}
			return nil
		},
	}
}

func newConfigWriteCommand(root *rootOptions) *cobra.Command {
	var scopes []string
	var force bool
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Rewrite configuration files as minimal patches of their effective values",
		Long: "Rewrite configuration files as minimal patches of their effective values.\n\n" +
			"Files that exist but cannot be parsed are left untouched unless --force is given,\n" +
			"in which case they are replaced by the defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedScopes, err := resolveConfigScopes(scopes)
			if err != nil {
				return err
			}
			logger, closer, _, err := openLogger(root)
			if err != nil {
				return err
			}
			defer closer.Close()
			res, err := resolveAll(logger, root.themeFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var skipped []config.Outcome
			for _, scope := range configScopeOrder {
				if !scopeSelected(resolvedScopes, scope) {
					continue
				}
				if outcome := res.outcome(scope); outcome.Unusable() && !force {
					skipped = append(skipped, outcome)
					continue
				}
				var path string
				switch scope {
				case configScopeTheme:
					path = res.paths.theme
					err = config.Save(res.store, theme.Kind, path, res.theme)
				case configScopeKeys:
					path = res.paths.bindings
					err = config.Save(res.store, keys.KeysKind, path, res.keys.Keys)
				case configScopeSymbols:
					path = res.paths.symbols
					err = config.Save(res.store, keys.SymbolsKind, path, res.keys.Symbols)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			if len(skipped) > 0 {
				fmt.Fprintln(out)
				printOutcomes(out, skipped)
				return fmt.Errorf("%d configuration file(s) could not be parsed and were left untouched; fix them or pass --force", len(skipped))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scope to write: theme|keys|symbols|all (repeatable)")
	cmd.Flags().BoolVar(&force, "force", false, "replace files that cannot be parsed with the defaults")
	return cmd
}

func loadForCommand(root *rootOptions) (resolution, error) {
	logger, closer, _, err := openLogger(root)
	if err != nil {
		return resolution{}, err
	}
	defer closer.Close()
	return resolveAll(logger, root.themeFile)
}

func printOutcomes(output io.Writer, outcomes []config.Outcome) int {
	failed := 0
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "FILE\tORIGIN\tCONVERTED\tERROR")
	for _, o := range outcomes {
		errText := "-"
		if o.Err != nil {
			errText = o.Err.Error()
			failed++
		}
		converted := "no"
		if o.Migrated {
			converted = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", o.Path, o.Origin, converted, strings.ReplaceAll(errText, "\n", "; "))
	}
	_ = writer.Flush()
	return failed
}

func buildConfigOutput(root *rootOptions, defaults bool, scopes map[string]struct{}) (configOutput, error) {
	out := configOutput{}
	var res resolution
	if defaults {
		res = resolution{theme: theme.Default(), keys: keys.DefaultKeyConfig()}
	} else {
		var err error
		if res, err = loadForCommand(root); err != nil {
			return configOutput{}, err
		}
		if scopeSelected(scopes, configScopeTheme) {
			out.ThemePath = res.paths.theme
		}
		if scopeSelected(scopes, configScopeKeys) {
			out.KeyBindingsPath = res.paths.bindings
		}
		if scopeSelected(scopes, configScopeSymbols) {
			out.KeySymbolsPath = res.paths.symbols
		}
	}
	if scopeSelected(scopes, configScopeTheme) {
		out.Theme = &res.theme
	}
	if scopeSelected(scopes, configScopeKeys) {
		out.KeyBindings = &res.keys.Keys
	}
	if scopeSelected(scopes, configScopeSymbols) {
		out.KeySymbols = &res.keys.Symbols
	}
	return out, nil
}

// projectedConfigPayload prints a single scope as the bare value so the output
// can be pasted into a file of that kind.
func projectedConfigPayload(payload configOutput, scopes map[string]struct{}) any {
	if len(scopes) != 1 {
		return payload
	}
	switch {
	case payload.Theme != nil:
		return payload.Theme
	case payload.KeyBindings != nil:
		return payload.KeyBindings
	case payload.KeySymbols != nil:
		return payload.KeySymbols
	}
	return payload
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	case configFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatTOML:
		return configFormatTOML, nil
	case configFormatJSON:
		return configFormatJSON, nil
	case configFormatYAML, "yml":
		return configFormatYAML, nil
	default:
		return "", errors.New("invalid format: must be toml, json, or yaml")
	}
}

func allConfigScopes() map[string]struct{} {
	return map[string]struct{}{
		configScopeTheme:   {},
		configScopeKeys:    {},
		configScopeSymbols: {},
	}
}

func resolveConfigScopes(values []string) (map[string]struct{}, error) {
	if len(values) == 0 {
		return allConfigScopes(), nil
	}
	out := map[string]struct{}{}
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			scope, err := normalizeConfigScope(part)
			if err != nil {
				return nil, err
			}
			if scope == "all" {
				return allConfigScopes(), nil
			}
			out[scope] = struct{}{}
		}
	}
	return out, nil
}

func normalizeConfigScope(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return "all", nil
	case configScopeTheme:
		return configScopeTheme, nil
	case configScopeKeys, "key_bindings", "bindings":
		return configScopeKeys, nil
	case configScopeSymbols, "key_symbols":
		return configScopeSymbols, nil
	default:
		return "", errors.New("invalid scope: must be theme, keys, symbols, or all")
	}
}

func scopeSelected(scopes map[string]struct{}, scope string) bool {
	_, ok := scopes[scope]
	return ok
}
