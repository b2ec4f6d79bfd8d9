// Copyright (c) 2026 Folio. All rights reserved.

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSStore keeps objects under a base directory.
type FSStore struct {
	baseDir string
}

// NewFSStore creates the base directory when missing.
func NewFSStore(baseDir string) (*FSStore, error) {
	if baseDir == "" {
		return nil, errors.New("media: base directory is required")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create base directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

// resolve maps a key to a path inside baseDir, rejecting traversal.
func (store *FSStore) resolve(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("media: invalid key %q", key)
	}
	return filepath.Join(store.baseDir, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}

func (store *FSStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	target, err := store.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("media: failed to create directory: %w", err)
	}

	// Write to a sibling temp file so readers never see a partial object
	temp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("media: failed to create file: %w", err)
	}
	defer os.Remove(temp.Name())

	if _, err := io.Copy(temp, body); err != nil {
		temp.Close()
		return fmt.Errorf("media: failed to write file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("media: failed to write file: %w", err)
	}

	if err := os.Rename(temp.Name(), target); err != nil {
		return fmt.Errorf("media: failed to store file: %w", err)
	}
	return nil
}

func (store *FSStore) Open(_ context.Context, key string) (*Object, error) {
	target, err := store.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("media: failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("media: failed to stat file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, ErrObjectNotFound
	}

	return &Object{
		Body:        file,
		ContentType: mime.TypeByExtension(filepath.Ext(target)),
		Size:        info.Size(),
	}, nil
}

func (store *FSStore) Exists(_ context.Context, key string) (bool, error) {
	target, err := store.resolve(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("media: failed to stat file: %w", err)
	}
	return !info.IsDir(), nil
}

func (store *FSStore) Delete(_ context.Context, key string) error {
	target, err := store.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("media: failed to delete file: %w", err)
	}
	return nil
}
