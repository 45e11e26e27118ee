package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
)

// StatusSnapshot is what polling clients see for a record
type StatusSnapshot struct {
	Status      entities.ProcessingStatus `json:"processing_status"`
	Error       *string                   `json:"processing_error,omitempty"`
	ProcessedAt *time.Time                `json:"processed_at,omitempty"`
}

// StatusTracker is the single writer of processing status. Every transition
// goes through the repository and is written through to the status cache;
// cache failures are logged and ignored.
type StatusTracker struct {
	records repositories.MeetingRecordRepository
	cache   *cache.StatusCache
	logger  *zap.Logger
}

// NewStatusTracker creates a new status tracker
func NewStatusTracker(records repositories.MeetingRecordRepository, statusCache *cache.StatusCache, logger *zap.Logger) *StatusTracker {
	return &StatusTracker{records: records, cache: statusCache, logger: logger}
}

// Claim moves a record to PROCESSING. Returns false when another worker
// already holds it.
func (t *StatusTracker) Claim(ctx context.Context, recordID uuid.UUID) (bool, error) {
	claimed, err := t.records.ClaimForProcessing(ctx, recordID)
	if err != nil || !claimed {
		return claimed, err
	}
	t.cacheStatus(ctx, recordID, entities.ProcessingStatusProcessing)
	return true, nil
}

// Complete stores the analysis result and moves the record to COMPLETED
func (t *StatusTracker) Complete(ctx context.Context, recordID uuid.UUID, analysis datatypes.JSON) error {
	if err := t.records.MarkCompleted(ctx, recordID, analysis); err != nil {
		return err
	}
	t.cacheStatus(ctx, recordID, entities.ProcessingStatusCompleted)
	return nil
}

// Fail moves the record to FAILED, recording the error message verbatim
func (t *StatusTracker) Fail(ctx context.Context, recordID uuid.UUID, message string) error {
	if err := t.records.MarkFailed(ctx, recordID, message); err != nil {
		return err
	}
	t.cacheStatus(ctx, recordID, entities.ProcessingStatusFailed)
	return nil
}

// Reset moves the record back to PENDING for reprocessing
func (t *StatusTracker) Reset(ctx context.Context, recordID uuid.UUID) error {
	if err := t.records.ResetToPending(ctx, recordID); err != nil {
		return err
	}
	t.cacheStatus(ctx, recordID, entities.ProcessingStatusPending)
	return nil
}

// Forget drops the cached status of a removed record so polling cannot keep
// answering for it until the TTL expires
func (t *StatusTracker) Forget(ctx context.Context, recordID uuid.UUID) {
	if err := t.cache.Invalidate(ctx, recordID); err != nil {
		t.logger.Warn("⚠️ Status cache invalidation failed",
			zap.String("record_id", recordID.String()),
			zap.Error(err))
	}
}

// Snapshot reads the current status. Non-terminal statuses are answered from
// the cache when possible; terminal ones carry error/processed_at and need
// the database anyway.
func (t *StatusTracker) Snapshot(ctx context.Context, recordID uuid.UUID) (*StatusSnapshot, error) {
	if status, ok, err := t.cache.GetStatus(ctx, recordID); err == nil && ok {
		if status == entities.ProcessingStatusPending || status == entities.ProcessingStatusProcessing {
			return &StatusSnapshot{Status: status}, nil
		}
	} else if err != nil {
		t.logger.Warn("⚠️ Status cache read failed", zap.Error(err))
	}

	record, err := t.records.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return &StatusSnapshot{
		Status:      record.ProcessingStatus,
		Error:       record.ProcessingError,
		ProcessedAt: record.ProcessedAt,
	}, nil
}

func (t *StatusTracker) cacheStatus(ctx context.Context, recordID uuid.UUID, status entities.ProcessingStatus) {
	if err := t.cache.SetStatus(ctx, recordID, status); err != nil {
		t.logger.Warn("⚠️ Status cache write failed",
			zap.String("record_id", recordID.String()),
			zap.Error(err))
	}
}
