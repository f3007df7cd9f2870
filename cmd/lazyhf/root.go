package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lazyhf/internal/config"
	"lazyhf/internal/logging"
	"lazyhf/internal/state"
	"lazyhf/internal/ui"
)

const (
	version      = "dev"
	stateTimeout = 2 * time.Second
)

var (
	runProgram = func(model tea.Model) (tea.Model, error) {
		return tea.NewProgram(model, tea.WithAltScreen()).Run()
	}
	statePath = state.DefaultPath
)

type rootOptions struct {
	themeFile string
	logging   bool
	logFile   string
	logLevel  string
	workDir   string
	cacheDir  string
	bugReport bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "lazyhf",
		Short:         "Terminal UI driven by patch-based theme and key configuration",
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.bugReport {
				return writeBugReport(cmd.OutOrStdout(), opts)
			}
			return runUI(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.themeFile, "theme", "t", config.ThemeFile, "theme file name inside the config directory, or a path")
	flags.BoolVarP(&opts.logging, "logging", "l", false, "write a log file")
	flags.StringVar(&opts.logFile, "logfile", "", "log file path (implies --logging)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	cmd.Flags().StringVarP(&opts.workDir, "workdir", "w", envOr("GIT_WORK_TREE", "."), "working directory (env GIT_WORK_TREE)")
	cmd.Flags().StringVarP(&opts.cacheDir, "directory", "d", envOr("GIT_DIR", ""), "hugging face cache directory (env GIT_DIR)")
	cmd.Flags().BoolVar(&opts.bugReport, "bugreport", false, "print environment and configuration details for a bug report")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func runUI(opts *rootOptions) error {
	logger, closer, logPath, err := openLogger(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	resolved, err := resolveAll(logger, opts.themeFile)
	if err != nil {
		return err
	}
	workDir, err := filepath.Abs(opts.workDir)
	if err != nil {
		return fmt.Errorf("resolve workdir: %w", err)
	}
	logger.Info("starting ui", logging.F("workdir", workDir), logging.F("config_dir", resolved.dir))

	states := openStateStore(logger)
	if states != nil {
		defer states.Close()
	}
	model := ui.New(ui.Options{
		Theme:    resolved.theme,
		Keys:     resolved.keys,
		Outcomes: resolved.outcomes,
		LogPath:  logPath,
		CacheDir: opts.cacheDir,
		WorkDir:  workDir,
		Logger:   logger,
		Restore:  loadState(states, workDir, logger),
	})
	final, err := runProgram(model)
	if err != nil {
		logger.Error("ui exited", logging.Err(err))
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		saveState(states, workDir, m.State(), logger)
	}
	return nil
}

// openStateStore returns nil when saved UI state is unavailable. Losing it is
// never fatal.
func openStateStore(logger logging.Logger) state.Store {
	path, err := statePath()
	if err != nil {
		logger.Warn("ui state unavailable", logging.Err(err))
		return nil
	}
	store, err := state.OpenBolt(path)
	if err != nil {
		logger.Warn("ui state unavailable", logging.F("path", path), logging.Err(err))
		return nil
	}
	return store
}

func loadState(store state.Store, workDir string, logger logging.Logger) *state.UIState {
	if store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	saved, err := store.Load(ctx, workDir)
	if err != nil {
		logger.Warn("ui state not loaded", logging.Err(err))
		return nil
	}
	return saved
}

func saveState(store state.Store, workDir string, saved *state.UIState, logger logging.Logger) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	if err := store.Save(ctx, workDir, saved); err != nil {
		logger.Warn("ui state not saved", logging.Err(err))
	}
}

func writeBugReport(out io.Writer, opts *rootOptions) error {
	fmt.Fprintf(out, "lazyhf %s\n", buildVersion())
	fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "term: %s\n", envOr("TERM", "-"))
	dir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(out, "config dir: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "config dir: %s\n\n", dir)
	// Read-only: a bug report must not convert legacy files.
	res, err := resolveAll(logging.Nop(), opts.themeFile, config.WithReadOnly())
	if err != nil {
		return err
	}
	printOutcomes(out, res.outcomes)
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger returns a no-op logger unless logging was requested, since the
// terminal belongs to the UI.
func openLogger(opts *rootOptions) (logging.Logger, io.Closer, string, error) {
	if !opts.logging && strings.TrimSpace(opts.logFile) == "" {
		return logging.Nop(), nopCloser{}, "", nil
	}
	path := strings.TrimSpace(opts.logFile)
	if path == "" {
		var err error
		if path, err = logging.DefaultPath(); err != nil {
			return nil, nil, "", fmt.Errorf("resolve log path: %w", err)
		}
	}
	logger, closer, err := logging.Open(path, logging.ParseLevel(opts.logLevel))
	if err != nil {
		return nil, nil, "", err
	}
	return logger, closer, path, nil
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	switch {
	case revision == "":
		return version
	case modified == "true":
		return revision + "-dirty"
	default:
		return revision
	}
}

func exitCode(err error) int {
	if errors.Is(err, config.ErrConfigDir) {
		return 2
	}
	return 1
}
