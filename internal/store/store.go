package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists small JSON documents under a single directory, one file per
// key. It is the local equivalent of the browser's durable key/value storage:
// reads happen at container initialization, writes happen synchronously on
// every mutation, and there is no transaction linking a write to any network
// call that preceded it.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write marshals v and replaces the file for key. Files are 0600 since the
// wallet key lives here.
func (s *Store) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return os.WriteFile(s.path(key), data, 0o600)
}

// Read unmarshals the file for key into v. The first return is false when the
// key has never been written.
func (s *Store) Read(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
