package handler

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-manager/errors"
	"github.com/johnquangdev/meeting-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-manager/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-manager/internal/usecase/pipeline"
)

const meetingDateLayout = "2006-01-02 15:04:05"

// Meeting handles meeting record HTTP requests
type Meeting struct {
	records      repositories.MeetingRecordRepository
	participants repositories.ParticipantRepository
	topics       repositories.TopicRepository
	decisions    repositories.DecisionRepository
	actions      repositories.ActionItemRepository
	followUps    repositories.FollowUpRepository

	store    storage.ArtifactStore
	pipeline pipeline.Service
	logger   *zap.Logger
}

// MeetingDeps bundles the collaborators of the meeting handler
type MeetingDeps struct {
	Records      repositories.MeetingRecordRepository
	Participants repositories.ParticipantRepository
	Topics       repositories.TopicRepository
	Decisions    repositories.DecisionRepository
	Actions      repositories.ActionItemRepository
	FollowUps    repositories.FollowUpRepository

	Store    storage.ArtifactStore
	Pipeline pipeline.Service
}

// NewMeeting creates a new meeting handler
func NewMeeting(deps MeetingDeps, logger *zap.Logger) *Meeting {
	return &Meeting{
		records:      deps.Records,
		participants: deps.Participants,
		topics:       deps.Topics,
		decisions:    deps.Decisions,
		actions:      deps.Actions,
		followUps:    deps.FollowUps,
		store:        deps.Store,
		pipeline:     deps.Pipeline,
		logger:       logger,
	}
}

// Upload accepts a meeting artifact, creates a PENDING record and dispatches
// the processing pipeline
// POST /v1/meeting-records/upload
func (h *Meeting) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	var req meeting.UploadRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Missing file"))
	}

	var meetingDate *time.Time
	if req.MeetingDate != "" {
		parsed, err := time.Parse(meetingDateLayout, req.MeetingDate)
		if err != nil {
			return HandleError(h.logger, c,
				apperrors.ErrInvalidArgument(fmt.Sprintf("Invalid meetingDate, expected %q", meetingDateLayout)))
		}
		meetingDate = &parsed
	}

	var participantInfos []meeting.ParticipantInfo
	if req.Participants != "" {
		if err := json.Unmarshal([]byte(req.Participants), &participantInfos); err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid participants JSON"))
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadFailed(err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadFailed(err))
	}

	path, err := h.store.Store(ctx, data, fileHeader.Filename)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("store", err))
	}

	sourceType := entities.DetermineSourceType(fileHeader.Filename)
	record := entities.NewMeetingRecord(req.MeetingName, sourceType, fileHeader.Filename, path)
	record.MeetingTopic = optionalField(req.MeetingTopic)
	record.Location = optionalField(req.Location)
	record.Language = optionalField(req.Language)
	record.MeetingDate = meetingDate
	size := fileHeader.Size
	record.FileSize = &size
	if format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."); format != "" {
		record.FileFormat = &format
	}

	if err := h.records.Create(ctx, record); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("create meeting record", err))
	}

	if len(participantInfos) > 0 {
		rows := make([]*entities.Participant, 0, len(participantInfos))
		for _, info := range participantInfos {
			p := entities.NewParticipant(record.ID, info.Name)
			p.Role = optionalField(info.Role)
			p.Department = optionalField(info.Department)
			p.Email = optionalField(info.Email)
			p.Phone = optionalField(info.Phone)
			rows = append(rows, p)
		}
		if err := h.participants.CreateBatch(ctx, rows); err != nil {
			return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("create participants", err))
		}
	}

	if err := h.pipeline.Dispatch(record.ID); err != nil {
		return HandleError(h.logger, c, apperrors.ErrProcessingFailed(err))
	}

	h.logger.Info("📥 Meeting artifact uploaded",
		zap.String("record_id", record.ID.String()),
		zap.String("source_type", string(sourceType)),
		zap.String("file_name", fileHeader.Filename))

	return HandleAccepted(h.logger, c, presenter.ToUploadResponse(record))
}

// Get returns a record with all decomposed children
// GET /v1/meeting-records/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.records.FindByID(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, h.translate(err, id))
	}

	detail := &meeting.RecordDetailResponse{Record: record}
	if detail.Participants, err = h.participants.FindByRecordID(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load participants", err))
	}
	if detail.Topics, err = h.topics.FindByRecordID(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load topics", err))
	}
	if detail.Decisions, err = h.decisions.FindByRecordID(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load decisions", err))
	}
	if detail.ActionItems, err = h.actions.FindByRecordID(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load action items", err))
	}
	if detail.FollowUps, err = h.followUps.FindByRecordID(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load follow ups", err))
	}

	return HandleSuccess(h.logger, c, detail)
}

// List returns a page of records, newest first
// GET /v1/meeting-records
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req meeting.ListRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	records, total, err := h.records.List(ctx, (req.Page-1)*req.PageSize, req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("list meeting records", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToListResponse(records, total, req.Page, req.PageSize))
}

// Status reports the processing state of one record
// GET /v1/meeting-records/:id/status
func (h *Meeting) Status(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	snapshot, err := h.pipeline.Tracker().Snapshot(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, h.translate(err, id))
	}

	return HandleSuccess(h.logger, c, presenter.ToStatusResponse(id, snapshot))
}

// Reprocess clears previous results and runs the pipeline again
// POST /v1/meeting-records/:id/reprocess
func (h *Meeting) Reprocess(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.pipeline.Reprocess(ctx, id); err != nil {
		if stdErrors.Is(err, entities.ErrAlreadyProcessing) {
			return HandleError(h.logger, c, apperrors.ErrReprocessConflict(id.String()))
		}
		return HandleError(h.logger, c, h.translate(err, id))
	}

	return HandleAccepted(h.logger, c, &meeting.StatusResponse{
		ID:               id.String(),
		ProcessingStatus: string(entities.ProcessingStatusPending),
	})
}

// Download streams the original artifact bytes
// GET /v1/meeting-records/:id/download
func (h *Meeting) Download(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.records.FindByID(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, h.translate(err, id))
	}

	data, err := h.store.Read(ctx, record.FilePath)
	if err != nil {
		if stdErrors.Is(err, entities.ErrArtifactMissing) {
			return HandleError(h.logger, c, apperrors.ErrNotFound("Artifact"))
		}
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("read", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, record.OriginalFileName))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, data)
}

// Delete removes the record, its children and the stored artifact
// DELETE /v1/meeting-records/:id
func (h *Meeting) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.records.FindByID(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, h.translate(err, id))
	}

	for _, del := range []func() error{
		func() error { return h.participants.DeleteByRecordID(ctx, id) },
		func() error { return h.topics.DeleteByRecordID(ctx, id) },
		func() error { return h.decisions.DeleteByRecordID(ctx, id) },
		func() error { return h.actions.DeleteByRecordID(ctx, id) },
		func() error { return h.followUps.DeleteByRecordID(ctx, id) },
	} {
		if err := del(); err != nil {
			return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("delete children", err))
		}
	}

	if err := h.records.Delete(ctx, id); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("delete meeting record", err))
	}

	h.pipeline.Tracker().Forget(ctx, id)

	if err := h.store.Remove(ctx, record.FilePath); err != nil {
		// the row is gone, an orphaned artifact is not worth a failed delete
		h.logger.Warn("⚠️ Failed to remove stored artifact",
			zap.String("record_id", id.String()),
			zap.String("path", record.FilePath),
			zap.Error(err))
	}

	h.logger.Info("🗑️ Meeting record deleted", zap.String("record_id", id.String()))

	return HandleSuccess(h.logger, c, map[string]string{"id": id.String()})
}

// translate maps domain errors to HTTP-facing AppErrors
func (h *Meeting) translate(err error, id uuid.UUID) error {
	if stdErrors.Is(err, entities.ErrMeetingRecordNotFound) {
		return apperrors.ErrMeetingRecordNotFound(id.String())
	}
	return err
}

func parseRecordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidArgument("Invalid record id")
	}
	return id, nil
}

func optionalField(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
