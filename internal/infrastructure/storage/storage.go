package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

// ArtifactStore persists uploaded meeting artifacts. Store returns the path
// later used by Read, Remove and the pipeline; the original filename only
// survives in record metadata.
type ArtifactStore interface {
	// Store saves the artifact bytes and returns the storage path
	Store(ctx context.Context, data []byte, originalName string) (string, error)

	// Read loads the artifact bytes at the given path.
	// Returns entities.ErrArtifactMissing when the artifact is gone.
	Read(ctx context.Context, path string) ([]byte, error)

	// Remove deletes the artifact at the given path
	Remove(ctx context.Context, path string) error
}

// New builds the artifact store selected by STORAGE_TYPE
func New(cfg *config.StorageConfig) (ArtifactStore, error) {
	switch cfg.Type {
	case "minio":
		return NewMinIOStore(cfg)
	case "local":
		return NewLocalStore(cfg.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// storedName generates a unique object name keeping the original extension,
// so the pipeline can still dispatch on it
func storedName(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}
