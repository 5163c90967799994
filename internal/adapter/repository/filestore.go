package repository

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore keeps each blob as <dir>/<key>.json. It matches the
// original engine's local-storage semantics: whole-value writes with
// last-write-wins, no locking across processes.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Path exposes the backing file so a watcher can observe it.
func (s *FileStore) Path(key string) string { return s.path(key) }

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FileStore) Put(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}
