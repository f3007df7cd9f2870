// Package config locates the configuration files and resolves them into
// values, migrating files written in the legacy full-value format.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"lazyhf/internal/logging"
	"lazyhf/internal/patch"
)

// Origin says where a resolved value came from.
type Origin int

const (
	OriginDefault Origin = iota
	OriginPatch
	OriginLegacy
)

func (o Origin) String() string {
	switch o {
	case OriginPatch:
		return "patch"
	case OriginLegacy:
		return "legacy"
	default:
		return "default"
	}
}

// Outcome describes how one file was resolved. Err is set when the file
// existed but could not be used, or when a migration write failed.
type Outcome struct {
	Path     string
	Origin   Origin
	Migrated bool
	Err      error
}

// Unusable reports whether the file exists but its contents were replaced by
// the default. Rewriting such a file would discard what the user wrote.
func (o Outcome) Unusable() bool {
	return o.Err != nil && o.Origin == OriginDefault
}

// Store reads and writes configuration files under one directory.
type Store struct {
	dir      string
	fs       FileSystem
	logger   logging.Logger
	readOnly bool
}

type Option func(*Store)

func WithFileSystem(fsys FileSystem) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReadOnly makes Resolve adopt legacy files without converting them.
func WithReadOnly() Option {
	return func(s *Store) {
		s.readOnly = true
	}
}

// NewStore returns a store rooted at dir.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, fs: OSFS{}, logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a store rooted at ConfigDir.
func Open(opts ...Option) (*Store, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir, opts...), nil
}

func (s *Store) Dir() string {
	return s.dir
}

// ResolvePath creates the configuration directory and returns the location
// of name inside it. Absolute names and names starting with ~/ are kept
// outside the directory.
func (s *Store) ResolvePath(name string) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDir, err)
	}
	path, err := expandPath(s.dir, name)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	return path, nil
}

// Load resolves path for kind, falling back to the default on any failure.
func Load[T any, P patch.Patch[T]](s *Store, kind patch.Kind[T, P], path string) T {
	value, _ := Resolve(s, kind, path)
	return value
}

// Resolve is Load with a report of what happened. A file in the legacy
// format is adopted and rewritten once as a patch; a failed rewrite is
// logged and the adopted value is still returned.
func Resolve[T any, P patch.Patch[T]](s *Store, kind patch.Kind[T, P], path string) (T, Outcome) {
	logger := s.logger.With(logging.F("kind", kind.Name), logging.F("path", path))
	outcome := Outcome{Path: path, Origin: OriginDefault}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("config file not found, using defaults")
		} else {
			outcome.Err = err
			logger.Error("config file unreadable, using defaults", logging.Err(err))
		}
		return kind.Default(), outcome
	}

	value, patchErr := kind.Decode(path, data)
	if patchErr == nil {
		outcome.Origin = OriginPatch
		logger.Debug("config file loaded")
		return value, outcome
	}

	value, legacyErr := kind.DecodeLegacy(path, data)
	if legacyErr != nil {
		outcome.Err = errors.Join(patchErr, legacyErr)
		logger.Error("config file invalid, using defaults",
			logging.F("patch_error", patchErr),
			logging.F("legacy_error", legacyErr),
		)
		return kind.Default(), outcome
	}

	outcome.Origin = OriginLegacy
	if s.readOnly {
		logger.Debug("legacy config left unconverted, store is read-only")
		return value, outcome
	}
	if err := writePatch(s, kind, path, value); err != nil {
		outcome.Err = err
		logger.Warn("legacy config not converted", logging.Err(err))
		return value, outcome
	}
	outcome.Migrated = true
	logger.Info("converted legacy config to patch format")
	return value, outcome
}

// Save writes value to path as a patch against the default.
func Save[T any, P patch.Patch[T]](s *Store, kind patch.Kind[T, P], path string, value T) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return writePatch(s, kind, path, value)
}

func writePatch[T any, P patch.Patch[T]](s *Store, kind patch.Kind[T, P], path string, value T) error {
	data, err := kind.Encode(value)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
