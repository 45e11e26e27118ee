package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// StatusCache keeps the latest processing status of each meeting record so
// polling clients do not hammer the database. Entries are written through on
// every pipeline transition; a miss falls back to the database.
type StatusCache struct {
	store Store
	ttl   time.Duration
}

// NewStatusCache creates a status cache on the given store
func NewStatusCache(store Store, ttl time.Duration) *StatusCache {
	return &StatusCache{store: store, ttl: ttl}
}

func statusKey(recordID uuid.UUID) string {
	return fmt.Sprintf("meeting:status:%s", recordID)
}

// SetStatus records the current processing status. Cache failures are
// returned so callers can log them; the pipeline never fails on them.
func (c *StatusCache) SetStatus(ctx context.Context, recordID uuid.UUID, status entities.ProcessingStatus) error {
	return c.store.Set(ctx, statusKey(recordID), string(status), c.ttl)
}

// GetStatus reads the cached status; the bool reports a hit
func (c *StatusCache) GetStatus(ctx context.Context, recordID uuid.UUID) (entities.ProcessingStatus, bool, error) {
	value, ok, err := c.store.Get(ctx, statusKey(recordID))
	if err != nil || !ok {
		return "", false, err
	}
	return entities.ProcessingStatus(value), true, nil
}

// Invalidate drops the cached status of a record
func (c *StatusCache) Invalidate(ctx context.Context, recordID uuid.UUID) error {
	return c.store.Delete(ctx, statusKey(recordID))
}
