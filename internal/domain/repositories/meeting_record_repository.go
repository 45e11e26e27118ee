package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// MeetingRecordRepository defines the interface for meeting record data access
type MeetingRecordRepository interface {
	// Create creates a new meeting record
	Create(ctx context.Context, record *entities.MeetingRecord) error

	// FindByID retrieves a meeting record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRecord, error)

	// List retrieves meeting records newest first, with the total count
	List(ctx context.Context, offset, limit int) ([]entities.MeetingRecord, int64, error)

	// Update persists the basic-info and metadata columns of an existing
	// record. Lifecycle columns are written only by the dedicated
	// operations below.
	Update(ctx context.Context, record *entities.MeetingRecord) error

	// SaveTranscription stores the transcription text of a record
	SaveTranscription(ctx context.Context, id uuid.UUID, text string) error

	// ClaimForProcessing atomically moves a record to PROCESSING and clears
	// any previous processing error. Returns false when the record is
	// already PROCESSING (claimed by another worker).
	ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkCompleted stores the analysis result, stamps processed_at and
	// moves the record to COMPLETED
	MarkCompleted(ctx context.Context, id uuid.UUID, analysis datatypes.JSON) error

	// MarkFailed moves the record to FAILED with the given error message
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	// ResetToPending moves the record back to PENDING, clearing the
	// processing error and processed_at
	ResetToPending(ctx context.Context, id uuid.UUID) error

	// Delete removes a meeting record
	Delete(ctx context.Context, id uuid.UUID) error
}
