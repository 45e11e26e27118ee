package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// UploadResponse is returned after a successful upload. Processing runs
// asynchronously; poll the status endpoint for progress.
type UploadResponse struct {
	ID               string    `json:"id"`
	MeetingName      string    `json:"meeting_name"`
	SourceType       string    `json:"source_type"`
	OriginalFileName string    `json:"original_file_name"`
	ProcessingStatus string    `json:"processing_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// StatusResponse reports the processing state of one record
type StatusResponse struct {
	ID               string     `json:"id"`
	ProcessingStatus string     `json:"processing_status"`
	ProcessingError  *string    `json:"processing_error,omitempty"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}

// RecordDetailResponse is a record with all decomposed children
type RecordDetailResponse struct {
	Record       *entities.MeetingRecord `json:"record"`
	Participants []entities.Participant  `json:"participants"`
	Topics       []entities.Topic        `json:"topics"`
	Decisions    []entities.Decision     `json:"decisions"`
	ActionItems  []entities.ActionItem   `json:"action_items"`
	FollowUps    []entities.FollowUp     `json:"follow_ups"`
}

// ListResponse is a paginated list of records, newest first
type ListResponse struct {
	Records    []entities.MeetingRecord `json:"records"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}
