package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/storage"
)

type testHarness struct {
	svc          Service
	records      *fakeRecordRepo
	participants *fakeParticipantRepo
	topics       *fakeTopicRepo
	store        storage.ArtifactStore
	speech       *fakeSpeechClient
	chat         *fakeChatClient
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local store: %v", err)
	}

	records := newFakeRecordRepo()
	participants := &fakeParticipantRepo{}
	topics := &fakeTopicRepo{}
	speech := &fakeSpeechClient{}
	chat := &fakeChatClient{}

	logger := zap.NewNop()
	statusCache := cache.NewStatusCache(cache.NewMemoryStore(), time.Minute)
	tracker := NewStatusTracker(records, statusCache, logger)

	svc, err := NewService(Deps{
		Records:      records,
		Participants: participants,
		Topics:       topics,
		Decisions:    &fakeDecisionRepo{},
		Actions:      &fakeActionItemRepo{},
		FollowUps:    &fakeFollowUpRepo{},
		Transcriber:  NewTranscriber(store, speech, logger),
		Extractor:    NewExtractor(chat, logger),
		Tracker:      tracker,
	}, 1, time.Minute, logger)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	t.Cleanup(svc.Release)

	return &testHarness{
		svc:          svc,
		records:      records,
		participants: participants,
		topics:       topics,
		store:        store,
		speech:       speech,
		chat:         chat,
	}
}

func (h *testHarness) createDocumentRecord(t *testing.T, content string) *entities.MeetingRecord {
	t.Helper()
	path, err := h.store.Store(context.Background(), []byte(content), "meeting.txt")
	if err != nil {
		t.Fatalf("failed to store artifact: %v", err)
	}
	record := entities.NewMeetingRecord("周会", entities.SourceTypeDocument, "meeting.txt", path)
	if err := h.records.Create(context.Background(), record); err != nil {
		t.Fatalf("failed to create record: %v", err)
	}
	return record
}

func TestProcess_DocumentEndToEnd(t *testing.T) {
	h := newTestHarness(t)
	h.chat.content = `{"discussionPoints":[{"topicTitle":"预算问题"}]}`
	record := h.createDocumentRecord(t, "会议讨论了预算问题")

	if err := h.svc.Process(context.Background(), record.ID); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusCompleted {
		t.Fatalf("unexpected status %q (error: %v)", got.ProcessingStatus, got.ProcessingError)
	}
	if got.ProcessedAt == nil {
		t.Fatal("completed record must have processed_at")
	}
	if got.ProcessingError != nil {
		t.Fatalf("completed record must not carry an error: %v", *got.ProcessingError)
	}
	if len(got.AnalysisResult) == 0 {
		t.Fatal("completed record must carry the analysis result")
	}
	if got.Transcription == nil || *got.Transcription != "会议讨论了预算问题" {
		t.Fatalf("unexpected transcription %v", got.Transcription)
	}

	topics, _ := h.topics.FindByRecordID(context.Background(), record.ID)
	if len(topics) != 1 || topics[0].TopicTitle != "预算问题" || topics[0].TopicOrder != 1 {
		t.Fatalf("unexpected topics: %+v", topics)
	}
	participants, _ := h.participants.FindByRecordID(context.Background(), record.ID)
	if len(participants) != 0 {
		t.Fatalf("expected no participants, got %d", len(participants))
	}
}

func TestProcess_ExtractionFallbackStillCompletes(t *testing.T) {
	h := newTestHarness(t)
	h.chat.err = errors.New("model unavailable")
	record := h.createDocumentRecord(t, "一些会议内容")

	if err := h.svc.Process(context.Background(), record.ID); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusCompleted {
		t.Fatalf("fallback summary must still complete, got %q", got.ProcessingStatus)
	}
	// basic-info overwrite applies the placeholder name
	if got.MeetingName != entities.DefaultMeetingName {
		t.Fatalf("unexpected meeting name %q", got.MeetingName)
	}
}

func TestProcess_TranscriptionFailureMarksFailed(t *testing.T) {
	h := newTestHarness(t)
	h.speech.err = errors.New("connection refused")

	path, err := h.store.Store(context.Background(), []byte("audio"), "meeting.mp3")
	if err != nil {
		t.Fatalf("failed to store artifact: %v", err)
	}
	record := entities.NewMeetingRecord("周会", entities.SourceTypeAudio, "meeting.mp3", path)
	h.records.Create(context.Background(), record)

	if err := h.svc.Process(context.Background(), record.ID); err == nil {
		t.Fatal("expected process to fail")
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusFailed {
		t.Fatalf("unexpected status %q", got.ProcessingStatus)
	}
	if got.ProcessingError == nil || !strings.Contains(*got.ProcessingError, "connection refused") {
		t.Fatalf("failure message not preserved: %v", got.ProcessingError)
	}
	if got.ProcessedAt != nil {
		t.Fatal("failed record must not have processed_at")
	}
}

func TestProcess_UnsupportedFormatFails(t *testing.T) {
	h := newTestHarness(t)

	path, _ := h.store.Store(context.Background(), []byte("data"), "slides.pptx")
	record := entities.NewMeetingRecord("周会", entities.SourceTypeDocument, "slides.pptx", path)
	h.records.Create(context.Background(), record)

	err := h.svc.Process(context.Background(), record.ID)
	if !errors.Is(err, entities.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusFailed {
		t.Fatalf("unexpected status %q", got.ProcessingStatus)
	}
}

func TestProcess_MissingArtifactFails(t *testing.T) {
	h := newTestHarness(t)
	record := entities.NewMeetingRecord("周会", entities.SourceTypeDocument, "meeting.txt", "gone.txt")
	h.records.Create(context.Background(), record)

	err := h.svc.Process(context.Background(), record.ID)
	if !errors.Is(err, entities.ErrArtifactMissing) {
		t.Fatalf("expected artifact missing error, got %v", err)
	}
}

func TestProcess_SkipsWhenAlreadyProcessing(t *testing.T) {
	h := newTestHarness(t)
	record := h.createDocumentRecord(t, "内容")
	record.ProcessingStatus = entities.ProcessingStatusProcessing
	h.records.records[record.ID].ProcessingStatus = entities.ProcessingStatusProcessing

	if err := h.svc.Process(context.Background(), record.ID); err != nil {
		t.Fatalf("skipped run must not error: %v", err)
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusProcessing {
		t.Fatalf("status must be untouched, got %q", got.ProcessingStatus)
	}
	if got.Transcription != nil {
		t.Fatal("skipped run must not write a transcription")
	}
}

func TestReprocess_FailedRecordRecovers(t *testing.T) {
	h := newTestHarness(t)
	h.chat.content = `{"discussionPoints":[{"topicTitle":"预算问题"}]}`
	record := h.createDocumentRecord(t, "会议讨论了预算问题")

	// first run fails downstream
	h.records.MarkFailed(context.Background(), record.ID, "connection refused")

	if err := h.svc.Reprocess(context.Background(), record.ID); err != nil {
		t.Fatalf("reprocess failed: %v", err)
	}

	// dispatch is async, poll for the terminal state
	deadline := time.After(5 * time.Second)
	for {
		got, _ := h.records.FindByID(context.Background(), record.ID)
		if got.ProcessingStatus == entities.ProcessingStatusCompleted {
			if got.ProcessingError != nil {
				t.Fatalf("reprocess must clear the error, got %v", *got.ProcessingError)
			}
			if got.ProcessedAt == nil {
				t.Fatal("completed record must have processed_at")
			}
			topics, _ := h.topics.FindByRecordID(context.Background(), record.ID)
			if len(topics) != 1 {
				t.Fatalf("expected exactly 1 topic after reprocess, got %d", len(topics))
			}
			return
		}
		select {
		case <-deadline:
			got, _ := h.records.FindByID(context.Background(), record.ID)
			t.Fatalf("record never completed, status %q error %v", got.ProcessingStatus, got.ProcessingError)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestReprocess_RejectsProcessingRecord(t *testing.T) {
	h := newTestHarness(t)
	record := h.createDocumentRecord(t, "内容")
	h.records.records[record.ID].ProcessingStatus = entities.ProcessingStatusProcessing

	err := h.svc.Reprocess(context.Background(), record.ID)
	if !errors.Is(err, entities.ErrAlreadyProcessing) {
		t.Fatalf("expected already-processing error, got %v", err)
	}
}

func TestUpdateLeavesLifecycleColumns(t *testing.T) {
	h := newTestHarness(t)
	record := h.createDocumentRecord(t, "内容")

	// load before the claim, as the orchestrator does
	stale, _ := h.records.FindByID(context.Background(), record.ID)

	claimed, err := h.records.ClaimForProcessing(context.Background(), record.ID)
	if err != nil || !claimed {
		t.Fatalf("claim failed: claimed=%v err=%v", claimed, err)
	}

	stale.MeetingName = "提取的名称"
	if err := h.records.Update(context.Background(), stale); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := h.records.FindByID(context.Background(), record.ID)
	if got.ProcessingStatus != entities.ProcessingStatusProcessing {
		t.Fatalf("stale struct must not revert the claim, got %q", got.ProcessingStatus)
	}
	if got.MeetingName != "提取的名称" {
		t.Fatalf("basic info not persisted: %q", got.MeetingName)
	}
}

func TestTracker_ForgetDropsCachedStatus(t *testing.T) {
	h := newTestHarness(t)
	record := h.createDocumentRecord(t, "内容")

	claimed, err := h.svc.Tracker().Claim(context.Background(), record.ID)
	if err != nil || !claimed {
		t.Fatalf("claim failed: claimed=%v err=%v", claimed, err)
	}

	// record deleted while the cache still holds PROCESSING
	h.records.Delete(context.Background(), record.ID)
	h.svc.Tracker().Forget(context.Background(), record.ID)

	_, err = h.svc.Tracker().Snapshot(context.Background(), record.ID)
	if !errors.Is(err, entities.ErrMeetingRecordNotFound) {
		t.Fatalf("deleted record must not report a status, got err=%v", err)
	}
}

func TestTracker_Snapshot(t *testing.T) {
	h := newTestHarness(t)
	record := h.createDocumentRecord(t, "内容")

	snapshot, err := h.svc.Tracker().Snapshot(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.Status != entities.ProcessingStatusPending {
		t.Fatalf("unexpected status %q", snapshot.Status)
	}

	h.records.MarkFailed(context.Background(), record.ID, "boom")
	snapshot, err = h.svc.Tracker().Snapshot(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.Status != entities.ProcessingStatusFailed {
		t.Fatalf("unexpected status %q", snapshot.Status)
	}
	if snapshot.Error == nil || *snapshot.Error != "boom" {
		t.Fatalf("snapshot must carry the failure message, got %v", snapshot.Error)
	}
}
