package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// DecisionRepository defines the interface for meeting decision data access
type DecisionRepository interface {
	// CreateBatch creates decision records in one insert
	CreateBatch(ctx context.Context, decisions []*entities.Decision) error

	// FindByRecordID retrieves all decisions of a meeting record
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Decision, error)

	// DeleteByRecordID removes all decisions of a meeting record
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error
}
