package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entities.MeetingRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uuid.UUID]*entities.MeetingRecord)}
}

func (r *fakeRecordRepo) Create(_ context.Context, record *entities.MeetingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MeetingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, entities.ErrMeetingRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *fakeRecordRepo) List(_ context.Context, offset, limit int) ([]entities.MeetingRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var records []entities.MeetingRecord
	for _, record := range r.records {
		records = append(records, *record)
	}
	return records, int64(len(records)), nil
}

func (r *fakeRecordRepo) Update(_ context.Context, record *entities.MeetingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[record.ID]
	if !ok {
		return entities.ErrMeetingRecordNotFound
	}
	// same column set as the gorm repository: basic info and metadata only,
	// lifecycle columns are written by their dedicated operations
	stored.MeetingName = record.MeetingName
	stored.MeetingTopic = record.MeetingTopic
	stored.MeetingDate = record.MeetingDate
	stored.Location = record.Location
	stored.Language = record.Language
	stored.FileSize = record.FileSize
	stored.FileFormat = record.FileFormat
	stored.Duration = record.Duration
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRecordRepo) SaveTranscription(_ context.Context, id uuid.UUID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return entities.ErrMeetingRecordNotFound
	}
	record.Transcription = &text
	return nil
}

func (r *fakeRecordRepo) ClaimForProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return false, nil
	}
	if record.ProcessingStatus == entities.ProcessingStatusProcessing {
		return false, nil
	}
	record.ProcessingStatus = entities.ProcessingStatusProcessing
	record.ProcessingError = nil
	return true, nil
}

func (r *fakeRecordRepo) MarkCompleted(_ context.Context, id uuid.UUID, analysis datatypes.JSON) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return entities.ErrMeetingRecordNotFound
	}
	now := time.Now()
	record.ProcessingStatus = entities.ProcessingStatusCompleted
	record.AnalysisResult = analysis
	record.ProcessedAt = &now
	return nil
}

func (r *fakeRecordRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return entities.ErrMeetingRecordNotFound
	}
	record.ProcessingStatus = entities.ProcessingStatusFailed
	record.ProcessingError = &message
	return nil
}

func (r *fakeRecordRepo) ResetToPending(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return entities.ErrMeetingRecordNotFound
	}
	record.ProcessingStatus = entities.ProcessingStatusPending
	record.ProcessingError = nil
	record.ProcessedAt = nil
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

type fakeParticipantRepo struct {
	mu   sync.Mutex
	rows []entities.Participant
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *entities.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *p)
	return nil
}

func (r *fakeParticipantRepo) CreateBatch(_ context.Context, participants []*entities.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range participants {
		r.rows = append(r.rows, *p)
	}
	return nil
}

func (r *fakeParticipantRepo) FindByRecordID(_ context.Context, recordID uuid.UUID) ([]entities.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Participant
	for _, p := range r.rows {
		if p.MeetingRecordID == recordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) DeleteByRecordID(_ context.Context, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, p := range r.rows {
		if p.MeetingRecordID != recordID {
			kept = append(kept, p)
		}
	}
	r.rows = kept
	return nil
}

type fakeTopicRepo struct {
	mu   sync.Mutex
	rows []entities.Topic
}

func (r *fakeTopicRepo) CreateBatch(_ context.Context, topics []*entities.Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range topics {
		r.rows = append(r.rows, *t)
	}
	return nil
}

func (r *fakeTopicRepo) FindByRecordID(_ context.Context, recordID uuid.UUID) ([]entities.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Topic
	for _, t := range r.rows {
		if t.MeetingRecordID == recordID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTopicRepo) DeleteByRecordID(_ context.Context, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, t := range r.rows {
		if t.MeetingRecordID != recordID {
			kept = append(kept, t)
		}
	}
	r.rows = kept
	return nil
}

type fakeDecisionRepo struct {
	mu   sync.Mutex
	rows []entities.Decision
}

func (r *fakeDecisionRepo) CreateBatch(_ context.Context, decisions []*entities.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range decisions {
		r.rows = append(r.rows, *d)
	}
	return nil
}

func (r *fakeDecisionRepo) FindByRecordID(_ context.Context, recordID uuid.UUID) ([]entities.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Decision
	for _, d := range r.rows {
		if d.MeetingRecordID == recordID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDecisionRepo) DeleteByRecordID(_ context.Context, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, d := range r.rows {
		if d.MeetingRecordID != recordID {
			kept = append(kept, d)
		}
	}
	r.rows = kept
	return nil
}

type fakeActionItemRepo struct {
	mu   sync.Mutex
	rows []entities.ActionItem
}

func (r *fakeActionItemRepo) CreateBatch(_ context.Context, items []*entities.ActionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.rows = append(r.rows, *item)
	}
	return nil
}

func (r *fakeActionItemRepo) FindByRecordID(_ context.Context, recordID uuid.UUID) ([]entities.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.ActionItem
	for _, item := range r.rows {
		if item.MeetingRecordID == recordID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeActionItemRepo) DeleteByRecordID(_ context.Context, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, item := range r.rows {
		if item.MeetingRecordID != recordID {
			kept = append(kept, item)
		}
	}
	r.rows = kept
	return nil
}

type fakeFollowUpRepo struct {
	mu   sync.Mutex
	rows []entities.FollowUp
}

func (r *fakeFollowUpRepo) CreateBatch(_ context.Context, followUps []*entities.FollowUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range followUps {
		r.rows = append(r.rows, *f)
	}
	return nil
}

func (r *fakeFollowUpRepo) FindByRecordID(_ context.Context, recordID uuid.UUID) ([]entities.FollowUp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.FollowUp
	for _, f := range r.rows {
		if f.MeetingRecordID == recordID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFollowUpRepo) DeleteByRecordID(_ context.Context, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, f := range r.rows {
		if f.MeetingRecordID != recordID {
			kept = append(kept, f)
		}
	}
	r.rows = kept
	return nil
}

type fakeSpeechClient struct {
	text string
	err  error
}

func (c *fakeSpeechClient) Transcribe(context.Context, []byte) (string, error) {
	return c.text, c.err
}

type fakeChatClient struct {
	content string
	err     error
}

func (c *fakeChatClient) AnalyzeTranscript(context.Context, string) (string, error) {
	return c.content, c.err
}
