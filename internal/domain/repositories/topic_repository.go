package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// TopicRepository defines the interface for meeting topic data access
type TopicRepository interface {
	// CreateBatch creates topic records in one insert
	CreateBatch(ctx context.Context, topics []*entities.Topic) error

	// FindByRecordID retrieves all topics of a meeting record in discussion order
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Topic, error)

	// DeleteByRecordID removes all topics of a meeting record
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error
}
