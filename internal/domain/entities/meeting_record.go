package entities

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SourceType tells the pipeline which transcription path a record takes.
type SourceType string

const (
	SourceTypeAudio    SourceType = "AUDIO"
	SourceTypeDocument SourceType = "DOCUMENT"
)

// ProcessingStatus represents the lifecycle state of a meeting record.
type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "PENDING"
	ProcessingStatusProcessing ProcessingStatus = "PROCESSING"
	ProcessingStatusCompleted  ProcessingStatus = "COMPLETED"
	ProcessingStatusFailed     ProcessingStatus = "FAILED"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
	".aac":  true,
	".ogg":  true,
}

// DetermineSourceType infers AUDIO or DOCUMENT from the uploaded filename.
func DetermineSourceType(filename string) SourceType {
	if audioExtensions[strings.ToLower(filepath.Ext(filename))] {
		return SourceTypeAudio
	}
	return SourceTypeDocument
}

// MeetingRecord is the root entity of the ingestion pipeline. One row per
// uploaded artifact; child tables reference ID.
type MeetingRecord struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingName      string           `gorm:"type:varchar(255);not null" json:"meeting_name"`
	MeetingTopic     *string          `gorm:"type:varchar(500)" json:"meeting_topic,omitempty"`
	MeetingDate      *time.Time       `json:"meeting_date,omitempty"`
	Location         *string          `gorm:"type:varchar(255)" json:"location,omitempty"`
	Language         *string          `gorm:"type:varchar(20)" json:"language,omitempty"`
	SourceType       SourceType       `gorm:"type:varchar(20);not null" json:"source_type"`
	OriginalFileName string           `gorm:"type:varchar(500);not null" json:"original_file_name"`
	FilePath         string           `gorm:"type:varchar(1000);not null" json:"file_path"`
	FileSize         *int64           `json:"file_size,omitempty"`
	FileFormat       *string          `gorm:"type:varchar(20)" json:"file_format,omitempty"`
	Duration         *int             `json:"duration,omitempty"` // seconds, audio only
	Transcription    *string          `gorm:"column:transcription_text;type:text" json:"transcription,omitempty"`
	AnalysisResult   datatypes.JSON   `gorm:"type:jsonb" json:"analysis_result,omitempty"`
	ProcessingStatus ProcessingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"processing_status"`
	ProcessingError  *string          `gorm:"type:text" json:"processing_error,omitempty"`
	CreatedAt        time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:now()" json:"updated_at"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty"`
}

// NewMeetingRecord builds a PENDING record for a freshly stored artifact.
func NewMeetingRecord(meetingName string, sourceType SourceType, originalFileName, filePath string) *MeetingRecord {
	now := time.Now()
	return &MeetingRecord{
		ID:               uuid.New(),
		MeetingName:      meetingName,
		SourceType:       sourceType,
		OriginalFileName: originalFileName,
		FilePath:         filePath,
		ProcessingStatus: ProcessingStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsCompleted checks whether processing finished successfully
func (r *MeetingRecord) IsCompleted() bool {
	return r.ProcessingStatus == ProcessingStatusCompleted
}

// IsFailed checks whether the last processing run failed
func (r *MeetingRecord) IsFailed() bool {
	return r.ProcessingStatus == ProcessingStatusFailed
}

// TableName specifies the table name for MeetingRecord
func (MeetingRecord) TableName() string {
	return "meeting_records"
}
