package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// topicRepository implements the TopicRepository interface
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) repositories.TopicRepository {
	return &topicRepository{db: db}
}

// CreateBatch creates topic records in one insert
func (r *topicRepository) CreateBatch(ctx context.Context, topics []*entities.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(topics).Error
}

// FindByRecordID retrieves all topics of a meeting record in discussion order
func (r *topicRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]entities.Topic, error) {
	var topics []entities.Topic
	if err := r.db.WithContext(ctx).
		Where("meeting_record_id = ?", recordID).
		Order("topic_order ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// DeleteByRecordID removes all topics of a meeting record
func (r *topicRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.Topic{}, "meeting_record_id = ?", recordID).Error
}
