package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch creates action item records in one insert
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByRecordID retrieves all action items of a meeting record
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.ActionItem, error)

	// DeleteByRecordID removes all action items of a meeting record
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error
}
