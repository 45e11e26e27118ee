package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// CreateBatch creates action item records in one insert
func (r *actionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

// FindByRecordID retrieves all action items of a meeting record
func (r *actionItemRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.ActionItem, error) {
	var items []entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_record_id = ?", recordID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByRecordID removes all action items of a meeting record
func (r *actionItemRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.ActionItem{}, "meeting_record_id = ?", recordID).Error
}
