package state

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketUIState = []byte("ui_state")

// openTimeout bounds the wait for the file lock held by another instance.
const openTimeout = 2 * time.Second

type bboltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating when missing) the state database at path.
func OpenBolt(path string) (Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("state db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketUIState)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltStore{db: db}, nil
}

// Load returns the saved state for workDir, or an empty state when nothing
// was saved yet.
func (s *bboltStore) Load(ctx context.Context, workDir string) (*UIState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	state := &UIState{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUIState)
		if b == nil {
			return nil
		}
		raw := b.Get(stateKey(workDir))
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *bboltStore) Save(ctx context.Context, workDir string, state *UIState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if state == nil {
		return errors.New("state is required")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUIState)
		if b == nil {
			return errors.New("ui state bucket missing")
		}
		return b.Put(stateKey(workDir), raw)
	})
}

func (s *bboltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
