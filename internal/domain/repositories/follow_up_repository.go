package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// FollowUpRepository defines the interface for follow-up data access
type FollowUpRepository interface {
	// CreateBatch creates follow-up records in one insert
	CreateBatch(ctx context.Context, followUps []*entities.FollowUp) error

	// FindByRecordID retrieves all follow-ups of a meeting record
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.FollowUp, error)

	// DeleteByRecordID removes all follow-ups of a meeting record
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error
}
