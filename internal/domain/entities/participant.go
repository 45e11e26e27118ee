package entities

import (
	"time"

	"github.com/google/uuid"
)

const AttendanceStatusAttended = "ATTENDED"

// Participant is one attendee of a meeting, either supplied at upload time or
// produced by decomposing the analysis summary.
type Participant struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingRecordID  uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_record_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Role             *string   `gorm:"type:varchar(100)" json:"role,omitempty"`
	Department       *string   `gorm:"type:varchar(100)" json:"department,omitempty"`
	Email            *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone            *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	AttendanceStatus *string   `gorm:"type:varchar(20)" json:"attendance_status,omitempty"`
	CreatedAt        time.Time `gorm:"default:now()" json:"created_at"`
}

// NewParticipant builds a participant row for a meeting record
func NewParticipant(recordID uuid.UUID, name string) *Participant {
	return &Participant{
		ID:              uuid.New(),
		MeetingRecordID: recordID,
		Name:            name,
		CreatedAt:       time.Now(),
	}
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "meeting_participants"
}
