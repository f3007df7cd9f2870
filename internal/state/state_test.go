package state

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	store, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	return store, path
}

func TestLoadWithoutSavedStateIsEmpty(t *testing.T) {
	store, _ := openTestStore(t)
	defer store.Close()

	state, err := store.Load(context.Background(), "/src/repo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Tab != "" || len(state.Selected) != 0 || state.CmdBarExpanded {
		t.Fatalf("expected empty state, got %#v", state)
	}
}

func TestStateRoundTripPerWorkDir(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	saved := &UIState{Tab: "log", Selected: map[string]int{"files": 4}, CmdBarExpanded: true}
	if err := store.Save(ctx, "/src/repo/", saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "/src/other", &UIState{Tab: "files"}); err != nil {
		t.Fatalf("save other: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, "/src/repo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Tab != "log" || loaded.Selected["files"] != 4 || !loaded.CmdBarExpanded {
		t.Fatalf("unexpected state %#v", loaded)
	}
	other, err := reopened.Load(ctx, "/src/other")
	if err != nil {
		t.Fatalf("load other: %v", err)
	}
	if other.Tab != "files" {
		t.Fatalf("unexpected other state %#v", other)
	}
}

func TestSaveRejectsNilAndCanceledContext(t *testing.T) {
	store, _ := openTestStore(t)
	defer store.Close()

	if err := store.Save(context.Background(), "/src/repo", nil); err == nil {
		t.Fatal("expected error for nil state")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Save(ctx, "/src/repo", &UIState{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if _, err := store.Load(ctx, "/src/repo"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestOpenBoltRequiresPath(t *testing.T) {
	if _, err := OpenBolt("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
