package entities

import (
	"time"

	"github.com/google/uuid"
)

// Topic is one discussed agenda item decomposed from the analysis summary.
// TopicOrder keeps the discussion sequence; bullets and speaker views are
// stored flattened.
type Topic struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingRecordID  uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_record_id"`
	TopicTitle       string    `gorm:"type:varchar(500);not null" json:"topic_title"`
	TopicDescription *string   `gorm:"type:text" json:"topic_description,omitempty"`
	DiscussionPoints *string   `gorm:"type:text" json:"discussion_points,omitempty"`
	SpeakerViews     *string   `gorm:"type:text" json:"speaker_views,omitempty"`
	TopicOrder       int       `gorm:"not null" json:"topic_order"`
	CreatedAt        time.Time `gorm:"default:now()" json:"created_at"`
}

// NewTopic builds a topic row at the given position in the discussion order
func NewTopic(recordID uuid.UUID, title string, order int) *Topic {
	return &Topic{
		ID:              uuid.New(),
		MeetingRecordID: recordID,
		TopicTitle:      title,
		TopicOrder:      order,
		CreatedAt:       time.Now(),
	}
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "meeting_topics"
}
