package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FollowUpStatus represents the resolution state of an unresolved issue.
type FollowUpStatus string

const (
	FollowUpStatusOpen       FollowUpStatus = "OPEN"
	FollowUpStatusInProgress FollowUpStatus = "IN_PROGRESS"
	FollowUpStatusResolved   FollowUpStatus = "RESOLVED"
	FollowUpStatusClosed     FollowUpStatus = "CLOSED"
)

// ParseFollowUpStatus matches a status label case-insensitively.
func ParseFollowUpStatus(s string) (FollowUpStatus, bool) {
	switch FollowUpStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case FollowUpStatusOpen:
		return FollowUpStatusOpen, true
	case FollowUpStatusInProgress:
		return FollowUpStatusInProgress, true
	case FollowUpStatusResolved:
		return FollowUpStatusResolved, true
	case FollowUpStatusClosed:
		return FollowUpStatusClosed, true
	}
	return "", false
}

// FollowUp is one unresolved issue carried forward from a meeting.
type FollowUp struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingRecordID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"meeting_record_id"`
	IssueTitle           string         `gorm:"type:varchar(500);not null" json:"issue_title"`
	IssueDescription     *string        `gorm:"type:text" json:"issue_description,omitempty"`
	UnresolvedReason     *string        `gorm:"type:text" json:"unresolved_reason,omitempty"`
	FollowUpPlan         *string        `gorm:"type:text" json:"follow_up_plan,omitempty"`
	NextMeetingDate      *time.Time     `json:"next_meeting_date,omitempty"`
	ResponsiblePerson    *string        `gorm:"type:varchar(255)" json:"responsible_person,omitempty"`
	Department           *string        `gorm:"type:varchar(100)" json:"department,omitempty"`
	Priority             ActionPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	Status               FollowUpStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	TargetResolutionDate *time.Time     `json:"target_resolution_date,omitempty"`
	CreatedAt            time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"default:now()" json:"updated_at"`
}

// NewFollowUp builds a follow-up row defaulting to OPEN status and MEDIUM priority
func NewFollowUp(recordID uuid.UUID, title string) *FollowUp {
	now := time.Now()
	return &FollowUp{
		ID:              uuid.New(),
		MeetingRecordID: recordID,
		IssueTitle:      title,
		Priority:        ActionPriorityMedium,
		Status:          FollowUpStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// TableName specifies the table name for FollowUp
func (FollowUp) TableName() string {
	return "meeting_follow_ups"
}
