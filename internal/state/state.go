// Package state remembers where the user left the UI, per work directory.
package state

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// UIState is the part of the UI restored on the next start in the same work
// directory.
type UIState struct {
	Tab            string         `json:"tab"`
	Selected       map[string]int `json:"selected,omitempty"`
	CmdBarExpanded bool           `json:"cmdbar_expanded"`
}

type Store interface {
	Load(ctx context.Context, workDir string) (*UIState, error)
	Save(ctx context.Context, workDir string, state *UIState) error
	Close() error
}

// DefaultPath returns <user cache dir>/lazyhf/state.db.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "lazyhf", "state.db"), nil
}

func stateKey(workDir string) []byte {
	return []byte(filepath.Clean(strings.TrimSpace(workDir)))
}
