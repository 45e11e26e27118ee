package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// followUpRepository implements the FollowUpRepository interface
type followUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new follow-up repository
func NewFollowUpRepository(db *gorm.DB) repositories.FollowUpRepository {
	return &followUpRepository{db: db}
}

// CreateBatch creates follow-up records in one insert
func (r *followUpRepository) CreateBatch(ctx context.Context, followUps []*entities.FollowUp) error {
	if len(followUps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(followUps).Error
}

// FindByRecordID retrieves all follow-ups of a meeting record
func (r *followUpRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.FollowUp, error) {
	var followUps []entities.FollowUp
	if err := r.db.WithContext(ctx).
		Where("meeting_record_id = ?", recordID).
		Order("created_at ASC").
		Find(&followUps).Error; err != nil {
		return nil, err
	}
	return followUps, nil
}

// DeleteByRecordID removes all follow-ups of a meeting record
func (r *followUpRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.FollowUp{}, "meeting_record_id = ?", recordID).Error
}
