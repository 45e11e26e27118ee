package entities

import (
	"time"

	"github.com/google/uuid"
)

// Decision is one resolution reached in a meeting, decomposed from the
// analysis summary. DecisionMakers is stored comma-joined.
type Decision struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingRecordID uuid.UUID  `gorm:"type:uuid;not null;index" json:"meeting_record_id"`
	DecisionTitle   string     `gorm:"type:varchar(500);not null" json:"decision_title"`
	DecisionContent *string    `gorm:"type:text" json:"decision_content,omitempty"`
	DecisionType    *string    `gorm:"type:varchar(100)" json:"decision_type,omitempty"`
	ConsensusLevel  *string    `gorm:"type:varchar(100)" json:"consensus_level,omitempty"`
	DecisionMakers  *string    `gorm:"type:text" json:"decision_makers,omitempty"`
	DecisionDate    *time.Time `json:"decision_date,omitempty"`
	EffectiveDate   *time.Time `json:"effective_date,omitempty"`
	CreatedAt       time.Time  `gorm:"default:now()" json:"created_at"`
}

// NewDecision builds a decision row for a meeting record
func NewDecision(recordID uuid.UUID, title string) *Decision {
	return &Decision{
		ID:              uuid.New(),
		MeetingRecordID: recordID,
		DecisionTitle:   title,
		CreatedAt:       time.Now(),
	}
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "meeting_decisions"
}
