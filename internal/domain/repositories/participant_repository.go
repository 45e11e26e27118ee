package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// Create creates a new participant record
	Create(ctx context.Context, participant *entities.Participant) error

	// CreateBatch creates participant records in one insert
	CreateBatch(ctx context.Context, participants []*entities.Participant) error

	// FindByRecordID retrieves all participants of a meeting record
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Participant, error)

	// DeleteByRecordID removes all participants of a meeting record
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error
}
