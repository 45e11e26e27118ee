package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// MeetingRecordRepository handles meeting record data operations
type MeetingRecordRepository struct {
	db *gorm.DB
}

// NewMeetingRecordRepository creates a new meeting record repository
func NewMeetingRecordRepository(db *gorm.DB) *MeetingRecordRepository {
	return &MeetingRecordRepository{db: db}
}

// Create creates a new meeting record
func (r *MeetingRecordRepository) Create(ctx context.Context, record *entities.MeetingRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID retrieves a meeting record by ID
func (r *MeetingRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRecord, error) {
	var record entities.MeetingRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

// List retrieves meeting records newest first, with the total count
func (r *MeetingRecordRepository) List(ctx context.Context, offset, limit int) ([]entities.MeetingRecord, int64, error) {
	var (
		records []entities.MeetingRecord
		total   int64
	)
	if limit <= 0 {
		limit = 20
	}
	if err := r.db.WithContext(ctx).Model(&entities.MeetingRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Update persists the basic-info and metadata columns of an existing record.
// Lifecycle columns (processing_status, processing_error, processed_at,
// analysis_result) and the transcription stay under their dedicated
// operations, so a struct loaded before a claim cannot revert the claim.
func (r *MeetingRecordRepository) Update(ctx context.Context, record *entities.MeetingRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"meeting_name":  record.MeetingName,
			"meeting_topic": record.MeetingTopic,
			"meeting_date":  record.MeetingDate,
			"location":      record.Location,
			"language":      record.Language,
			"file_size":     record.FileSize,
			"file_format":   record.FileFormat,
			"duration":      record.Duration,
			"updated_at":    time.Now(),
		}).Error
}

// SaveTranscription stores the transcription text of a record
func (r *MeetingRecordRepository) SaveTranscription(ctx context.Context, id uuid.UUID, text string) error {
	return r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"transcription_text": text,
			"updated_at":         time.Now(),
		}).Error
}

// ClaimForProcessing atomically moves a record to PROCESSING and clears any
// previous error. The status guard makes concurrent claims lose cleanly:
// RowsAffected is zero when another worker already holds the record.
func (r *MeetingRecordRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ? AND processing_status <> ?", id, entities.ProcessingStatusProcessing).
		Updates(map[string]interface{}{
			"processing_status": entities.ProcessingStatusProcessing,
			"processing_error":  nil,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkCompleted stores the analysis result and stamps processed_at
func (r *MeetingRecordRepository) MarkCompleted(ctx context.Context, id uuid.UUID, analysis datatypes.JSON) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processing_status": entities.ProcessingStatusCompleted,
			"analysis_result":   analysis,
			"processed_at":      now,
			"updated_at":        now,
		}).Error
}

// MarkFailed moves the record to FAILED with the given error message
func (r *MeetingRecordRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processing_status": entities.ProcessingStatusFailed,
			"processing_error":  message,
			"updated_at":        time.Now(),
		}).Error
}

// ResetToPending moves the record back to PENDING for reprocessing
func (r *MeetingRecordRepository) ResetToPending(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.MeetingRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processing_status": entities.ProcessingStatusPending,
			"processing_error":  nil,
			"processed_at":      nil,
			"updated_at":        time.Now(),
		}).Error
}

// Delete removes a meeting record
func (r *MeetingRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.MeetingRecord{}, "id = ?", id).Error
}
