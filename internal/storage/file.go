package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per key in a state directory. This is the
// default backend: a single-user client on a machine with a writable home
// directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	// Keys are fixed identifiers, but never trust them as path segments.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, safe+".json")
}

func (f *FileStore) Get(key string, dest interface{}) error {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupt content reads as absent.
		return ErrNotFound
	}
	return nil
}

func (f *FileStore) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
