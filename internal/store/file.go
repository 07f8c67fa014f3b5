package store

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileKV stores one file per key under a directory. Keys contain
// characters that are unsafe in filenames (the colon-delimited storage
// keys), so they are query-escaped on disk.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a KV
// rooted there.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (kv *FileKV) path(key string) string {
	return filepath.Join(kv.dir, url.QueryEscape(key))
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes through a temp file and renames, so a crash mid-write
// never leaves a truncated value behind.
func (kv *FileKV) Set(key, value string) error {
	target := kv.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
