package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// LocalStore keeps artifacts on the local filesystem under a base directory
type LocalStore struct {
	dir string
}

// NewLocalStore creates the base directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store saves the artifact bytes and returns the storage path
func (s *LocalStore) Store(_ context.Context, data []byte, originalName string) (string, error) {
	name := storedName(originalName)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return name, nil
}

// Read loads the artifact bytes at the given path
func (s *LocalStore) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, path))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", entities.ErrArtifactMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return data, nil
}

// Remove deletes the artifact at the given path
func (s *LocalStore) Remove(_ context.Context, path string) error {
	err := os.Remove(filepath.Join(s.dir, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact: %w", err)
	}
	return nil
}
