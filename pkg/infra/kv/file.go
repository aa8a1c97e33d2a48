package kv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
)

type fileStore struct {
	dir string
}

type fileEntry struct {
	Value string `json:"value"`
}

// NewFile creates a filesystem-backed store keeping one small JSON file per
// key under dir.
func NewFile(dir string) (interfaces.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create cache directory", goerr.V("dir", dir))
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// GetValue returns the stored value, or defaultValue when the file is absent
// or unreadable.
func (s *fileStore) GetValue(_ context.Context, key, defaultValue string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return defaultValue, nil
	}
	var e fileEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return defaultValue, nil
	}
	return e.Value, nil
}

// SetValue overwrites the key's file. The write goes through a temp file and
// rename so a crash never leaves a torn JSON document behind.
func (s *fileStore) SetValue(_ context.Context, key, value string) error {
	data, err := json.Marshal(fileEntry{Value: value})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal entry", goerr.V("key", key))
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("key", key))
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return goerr.Wrap(err, "failed to write temp file", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("key", key))
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return goerr.Wrap(err, "failed to rename temp file", goerr.V("key", key))
	}
	return nil
}
