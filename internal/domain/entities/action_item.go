package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionPriority represents the urgency of an action item or follow-up.
type ActionPriority string

const (
	ActionPriorityLow    ActionPriority = "LOW"
	ActionPriorityMedium ActionPriority = "MEDIUM"
	ActionPriorityHigh   ActionPriority = "HIGH"
)

// ParseActionPriority matches a priority label case-insensitively.
// The second return value reports whether the label matched.
func ParseActionPriority(s string) (ActionPriority, bool) {
	switch ActionPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionPriorityLow:
		return ActionPriorityLow, true
	case ActionPriorityMedium:
		return ActionPriorityMedium, true
	case ActionPriorityHigh:
		return ActionPriorityHigh, true
	}
	return "", false
}

// ActionItemStatus represents the execution state of an action item.
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "PENDING"
	ActionItemStatusInProgress ActionItemStatus = "IN_PROGRESS"
	ActionItemStatusCompleted  ActionItemStatus = "COMPLETED"
	ActionItemStatusCancelled  ActionItemStatus = "CANCELLED"
)

// ParseActionItemStatus matches a status label case-insensitively.
func ParseActionItemStatus(s string) (ActionItemStatus, bool) {
	switch ActionItemStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionItemStatusPending:
		return ActionItemStatusPending, true
	case ActionItemStatusInProgress:
		return ActionItemStatusInProgress, true
	case ActionItemStatusCompleted:
		return ActionItemStatusCompleted, true
	case ActionItemStatusCancelled:
		return ActionItemStatusCancelled, true
	}
	return "", false
}

// ActionItem is one assigned task decomposed from the analysis summary.
type ActionItem struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingRecordID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"meeting_record_id"`
	TaskDescription   string           `gorm:"type:text;not null" json:"task_description"`
	ResponsiblePerson *string          `gorm:"type:varchar(255)" json:"responsible_person,omitempty"`
	Department        *string          `gorm:"type:varchar(100)" json:"department,omitempty"`
	Priority          ActionPriority   `gorm:"type:varchar(20)" json:"priority,omitempty"`
	DueDate           *time.Time       `json:"due_date,omitempty"`
	Status            ActionItemStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ProgressNotes     *string          `gorm:"type:text" json:"progress_notes,omitempty"`
	CompletionNotes   *string          `gorm:"type:text" json:"completion_notes,omitempty"`
	RelatedTopicID    *int64           `json:"related_topic_id,omitempty"`
	CreatedAt         time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"default:now()" json:"updated_at"`
}

// NewActionItem builds an action item row defaulting to PENDING status
func NewActionItem(recordID uuid.UUID, task string) *ActionItem {
	now := time.Now()
	return &ActionItem{
		ID:              uuid.New(),
		MeetingRecordID: recordID,
		TaskDescription: task,
		Status:          ActionItemStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "meeting_action_items"
}
