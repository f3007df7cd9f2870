package config

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"lazyhf/internal/keys"
	"lazyhf/internal/logging"
	"lazyhf/internal/patch"
	"lazyhf/internal/theme"
)

type memFS struct {
	files    map[string][]byte
	writes   map[string]int
	writeErr error
	mkdirErr error
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}, writes: map[string]int{}}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (m *memFS) WriteFile(path string, data []byte, _ fs.FileMode) error {
	m.writes[path]++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *memFS) MkdirAll(string, fs.FileMode) error {
	return m.mkdirErr
}

func newTestStore(fsys *memFS, opts ...Option) (*Store, *bytes.Buffer) {
	var buf bytes.Buffer
	store := NewStore("/cfg/lazyhf", append([]Option{
		WithFileSystem(fsys),
		WithLogger(logging.New(&buf, logging.Debug)),
	}, opts...)...)
	return store, &buf
}

const themePath = "/cfg/lazyhf/theme.toml"

func legacyTheme(t *testing.T, value theme.Theme) []byte {
	t.Helper()
	data, err := patch.EncodeLegacy(value)
	if err != nil {
		t.Fatalf("EncodeLegacy: %v", err)
	}
	return data
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store, logs := newTestStore(newMemFS())
	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != theme.Default() {
		t.Fatalf("expected default theme, got %+v", got)
	}
	if outcome.Origin != OriginDefault || outcome.Err != nil {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if !strings.Contains(logs.String(), "level=debug") {
		t.Fatalf("expected a debug line, got %q", logs.String())
	}
	if strings.Contains(logs.String(), "level=error") {
		t.Fatalf("missing file must not log an error: %q", logs.String())
	}
}

func TestLoadPatchFile(t *testing.T) {
	fsys := newMemFS()
	fsys.files[themePath] = []byte("selection_bg = \"red\"\nuse_selection_fg = false\n")
	store, _ := newTestStore(fsys)

	got, outcome := Resolve(store, theme.Kind, themePath)
	want := theme.Default()
	want.SelectionBg = theme.Red
	want.UseSelectionFg = false
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if outcome.Origin != OriginPatch {
		t.Fatalf("expected patch origin, got %s", outcome.Origin)
	}
	if fsys.writes[themePath] != 0 {
		t.Fatal("patch files must not be rewritten")
	}
}

func TestLoadMigratesLegacyFileOnce(t *testing.T) {
	fsys := newMemFS()
	legacy := theme.Default()
	legacy.BranchFg = theme.Cyan
	fsys.files[themePath] = legacyTheme(t, legacy)
	store, logs := newTestStore(fsys)

	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != legacy {
		t.Fatalf("expected legacy value, got %+v", got)
	}
	if outcome.Origin != OriginLegacy || !outcome.Migrated {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if fsys.writes[themePath] != 1 {
		t.Fatalf("expected exactly one write, got %d", fsys.writes[themePath])
	}
	if !strings.Contains(logs.String(), "level=info") {
		t.Fatalf("expected info line for migration, got %q", logs.String())
	}

	p, err := patch.Parse[theme.Patch](themePath, fsys.files[themePath])
	if err != nil {
		t.Fatalf("rewritten file is not a patch: %v\n%s", err, fsys.files[themePath])
	}
	if p.BranchFg == nil || *p.BranchFg != theme.Cyan || p.CommandFg != nil {
		t.Fatalf("rewritten patch is not the diff: %+v", p)
	}

	again, outcome := Resolve(store, theme.Kind, themePath)
	if again != legacy || outcome.Origin != OriginPatch {
		t.Fatalf("second load: %+v %+v", again, outcome)
	}
	if fsys.writes[themePath] != 1 {
		t.Fatalf("second load wrote again: %d", fsys.writes[themePath])
	}
}

func TestLoadKeepsLegacyValueWhenRewriteFails(t *testing.T) {
	fsys := newMemFS()
	legacy := theme.Default()
	legacy.TagFg = theme.White
	fsys.files[themePath] = legacyTheme(t, legacy)
	fsys.writeErr = errors.New("read-only file system")
	store, logs := newTestStore(fsys)

	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != legacy {
		t.Fatalf("expected legacy value, got %+v", got)
	}
	if outcome.Migrated || outcome.Err == nil {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if fsys.writes[themePath] != 1 {
		t.Fatalf("expected a single write attempt, got %d", fsys.writes[themePath])
	}
	if !strings.Contains(logs.String(), "level=warn") {
		t.Fatalf("expected warn line, got %q", logs.String())
	}
}

func TestLoadMalformedFileReturnsDefault(t *testing.T) {
	fsys := newMemFS()
	fsys.files[themePath] = []byte("selection_bg = \n{not json either")
	store, logs := newTestStore(fsys)

	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != theme.Default() {
		t.Fatalf("expected default, got %+v", got)
	}
	var perr *patch.ParseError
	if !errors.As(outcome.Err, &perr) {
		t.Fatalf("expected parse error in outcome, got %v", outcome.Err)
	}
	if !strings.Contains(logs.String(), "level=error") {
		t.Fatalf("expected error line, got %q", logs.String())
	}
	if fsys.writes[themePath] != 0 {
		t.Fatal("malformed files must not be rewritten")
	}
}

func TestLoadIncompleteLegacyFileReturnsDefault(t *testing.T) {
	fsys := newMemFS()
	fsys.files[themePath] = []byte(`{"selection_bg": "red"}`)
	store, _ := newTestStore(fsys)

	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != theme.Default() {
		t.Fatalf("expected default, got %+v", got)
	}
	if !errors.Is(outcome.Err, patch.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", outcome.Err)
	}
}

func TestSaveWritesSparsePatch(t *testing.T) {
	fsys := newMemFS()
	store, _ := newTestStore(fsys)
	value := keys.DefaultKeySymbols()
	value.Control = "C-"

	path := "/cfg/lazyhf/key_symbols.toml"
	if err := Save(store, keys.SymbolsKind, path, value); err != nil {
		t.Fatalf("Save: %v", err)
	}
	text := string(fsys.files[path])
	if !strings.Contains(text, "control") || strings.Contains(text, "enter") {
		t.Fatalf("unexpected patch file:\n%s", text)
	}
	if got := Load(store, keys.SymbolsKind, path); got != value {
		t.Fatalf("reload mismatch: %+v", got)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	fsys := newMemFS()
	fsys.files["/cfg/lazyhf/key_bindings.toml"] = []byte("quit = \"x\"\n")
	fsys.files["/cfg/lazyhf/key_symbols.toml"] = []byte("control = \"C-\"\n")
	store, _ := newTestStore(fsys)

	cfg, err := store.LoadKeyConfig()
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if cfg.Keys.Quit != keys.Char('x') {
		t.Fatalf("unexpected quit binding %s", cfg.Keys.Quit)
	}
	if got := cfg.HintFor("exit"); got != "C-c" {
		t.Fatalf("unexpected exit hint %q", got)
	}
}

func TestLoadThemeNeverFails(t *testing.T) {
	fsys := newMemFS()
	fsys.files[themePath] = []byte("\x00\x01garbage")
	store, _ := newTestStore(fsys)
	if got := store.LoadTheme(themePath); got != theme.Default() {
		t.Fatalf("expected default, got %+v", got)
	}
}

func TestReadOnlyStoreLeavesLegacyFile(t *testing.T) {
	fsys := newMemFS()
	legacy := theme.Default()
	legacy.BranchFg = theme.Cyan
	original := legacyTheme(t, legacy)
	fsys.files[themePath] = original
	store, _ := newTestStore(fsys, WithReadOnly())

	got, outcome := Resolve(store, theme.Kind, themePath)
	if got != legacy {
		t.Fatalf("expected legacy value, got %+v", got)
	}
	if outcome.Origin != OriginLegacy || outcome.Migrated || outcome.Err != nil {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if fsys.writes[themePath] != 0 || !bytes.Equal(fsys.files[themePath], original) {
		t.Fatal("read-only store rewrote the legacy file")
	}
}

func TestOutcomeUnusable(t *testing.T) {
	fsys := newMemFS()
	fsys.files[themePath] = []byte("selection_bg = \"red\"\ncommand_fg = \n")
	fsys.writeErr = errors.New("disk full")
	store, _ := newTestStore(fsys)

	_, malformed := Resolve(store, theme.Kind, themePath)
	if !malformed.Unusable() {
		t.Fatalf("malformed file must be unusable: %+v", malformed)
	}
	_, missing := Resolve(store, theme.Kind, "/cfg/lazyhf/none.toml")
	if missing.Unusable() {
		t.Fatalf("missing file must not be unusable: %+v", missing)
	}

	fsys.files[themePath] = legacyTheme(t, theme.Default())
	_, unconverted := Resolve(store, theme.Kind, themePath)
	if unconverted.Err == nil || unconverted.Unusable() {
		t.Fatalf("failed conversion keeps the legacy value: %+v", unconverted)
	}
}

func TestResolveKeyConfigReportsOutcomes(t *testing.T) {
	fsys := newMemFS()
	fsys.files["/cfg/lazyhf/key_bindings.toml"] = []byte("quit = [\n")
	fsys.files["/cfg/lazyhf/key_symbols.toml"] = []byte("control = \"C-\"\n")
	store, _ := newTestStore(fsys)

	cfg, outcomes, err := store.ResolveKeyConfig()
	if err != nil {
		t.Fatalf("ResolveKeyConfig: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected two outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Path != "/cfg/lazyhf/key_bindings.toml" || !outcomes[0].Unusable() {
		t.Fatalf("unexpected bindings outcome %+v", outcomes[0])
	}
	if outcomes[1].Origin != OriginPatch || outcomes[1].Err != nil {
		t.Fatalf("unexpected symbols outcome %+v", outcomes[1])
	}
	if cfg.Keys.Quit != keys.DefaultKeysList().Quit || cfg.Symbols.Control != "C-" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	th, outcome := store.ResolveTheme(themePath)
	if th != theme.Default() || outcome.Origin != OriginDefault || outcome.Path != themePath {
		t.Fatalf("unexpected theme outcome %+v", outcome)
	}
}
