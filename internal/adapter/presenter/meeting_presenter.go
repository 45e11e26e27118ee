package presenter

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/usecase/pipeline"
)

// ToUploadResponse converts a freshly created record to UploadResponse
func ToUploadResponse(r *entities.MeetingRecord) *meeting.UploadResponse {
	if r == nil {
		return nil
	}
	return &meeting.UploadResponse{
		ID:               r.ID.String(),
		MeetingName:      r.MeetingName,
		SourceType:       string(r.SourceType),
		OriginalFileName: r.OriginalFileName,
		ProcessingStatus: string(r.ProcessingStatus),
		CreatedAt:        r.CreatedAt,
	}
}

// ToStatusResponse converts a status snapshot to StatusResponse
func ToStatusResponse(id uuid.UUID, snapshot *pipeline.StatusSnapshot) *meeting.StatusResponse {
	if snapshot == nil {
		return nil
	}
	return &meeting.StatusResponse{
		ID:               id.String(),
		ProcessingStatus: string(snapshot.Status),
		ProcessingError:  snapshot.Error,
		ProcessedAt:      snapshot.ProcessedAt,
	}
}

// ToListResponse converts a page of records to ListResponse
func ToListResponse(records []entities.MeetingRecord, total int64, page, pageSize int) *meeting.ListResponse {
	if records == nil {
		records = []entities.MeetingRecord{}
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &meeting.ListResponse{
		Records:    records,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
