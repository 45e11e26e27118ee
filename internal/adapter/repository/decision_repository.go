package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

// CreateBatch creates decision records in one insert
func (r *decisionRepository) CreateBatch(ctx context.Context, decisions []*entities.Decision) error {
	if len(decisions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(decisions).Error
}

// FindByRecordID retrieves all decisions of a meeting record
func (r *decisionRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Decision, error) {
	var decisions []entities.Decision
	if err := r.db.WithContext(ctx).
		Where("meeting_record_id = ?", recordID).
		Order("created_at ASC").
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// DeleteByRecordID removes all decisions of a meeting record
func (r *decisionRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.Decision{}, "meeting_record_id = ?", recordID).Error
}
