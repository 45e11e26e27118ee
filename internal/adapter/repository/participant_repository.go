package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// Create creates a new participant record
func (r *participantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// CreateBatch creates participant records in one insert
func (r *participantRepository) CreateBatch(ctx context.Context, participants []*entities.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(participants).Error
}

// FindByRecordID retrieves all participants of a meeting record
func (r *participantRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Participant, error) {
	var participants []entities.Participant
	if err := r.db.WithContext(ctx).
		Where("meeting_record_id = ?", recordID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// DeleteByRecordID removes all participants of a meeting record
func (r *participantRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.Participant{}, "meeting_record_id = ?", recordID).Error
}
