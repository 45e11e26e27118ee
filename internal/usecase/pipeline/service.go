package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// Service runs the processing pipeline for meeting records
type Service interface {
	// Dispatch submits a record for async processing and returns immediately
	Dispatch(recordID uuid.UUID) error

	// Process runs the pipeline synchronously for one record
	Process(ctx context.Context, recordID uuid.UUID) error

	// Reprocess clears previous results, resets the record to PENDING and
	// dispatches a fresh run
	Reprocess(ctx context.Context, recordID uuid.UUID) error

	// Tracker exposes the status tracker for read access
	Tracker() *StatusTracker

	// Release stops the worker pool
	Release()
}

type service struct {
	records      repositories.MeetingRecordRepository
	participants repositories.ParticipantRepository
	topics       repositories.TopicRepository
	decisions    repositories.DecisionRepository
	actions      repositories.ActionItemRepository
	followUps    repositories.FollowUpRepository

	transcriber *Transcriber
	extractor   *Extractor
	decomposer  *Decomposer
	tracker     *StatusTracker

	pool        *ants.Pool
	taskTimeout time.Duration
	logger      *zap.Logger
}

// Deps bundles the collaborators of the pipeline service
type Deps struct {
	Records      repositories.MeetingRecordRepository
	Participants repositories.ParticipantRepository
	Topics       repositories.TopicRepository
	Decisions    repositories.DecisionRepository
	Actions      repositories.ActionItemRepository
	FollowUps    repositories.FollowUpRepository

	Transcriber *Transcriber
	Extractor   *Extractor
	Tracker     *StatusTracker
}

// NewService creates the pipeline service with a worker pool of the given
// size
func NewService(deps Deps, workerCount int, taskTimeout time.Duration, logger *zap.Logger) (Service, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &service{
		records:      deps.Records,
		participants: deps.Participants,
		topics:       deps.Topics,
		decisions:    deps.Decisions,
		actions:      deps.Actions,
		followUps:    deps.FollowUps,
		transcriber:  deps.Transcriber,
		extractor:    deps.Extractor,
		decomposer: NewDecomposer(
			deps.Participants,
			deps.Topics,
			deps.Decisions,
			deps.Actions,
			deps.FollowUps,
			logger,
		),
		tracker:     deps.Tracker,
		pool:        pool,
		taskTimeout: taskTimeout,
		logger:      logger,
	}, nil
}

// Dispatch submits a record for async processing
func (s *service) Dispatch(recordID uuid.UUID) error {
	return s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.taskTimeout)
		defer cancel()

		if err := s.Process(ctx, recordID); err != nil {
			s.logger.Error("❌ Pipeline run failed",
				zap.String("record_id", recordID.String()),
				zap.Error(err))
		}
	})
}

// Process runs transcription, extraction and decomposition for one record.
// The claim moves the record to PROCESSING and clears any previous error;
// when another worker already holds the record the run is skipped.
func (s *service) Process(ctx context.Context, recordID uuid.UUID) error {
	record, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return err
	}

	claimed, err := s.tracker.Claim(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to claim record: %w", err)
	}
	if !claimed {
		s.logger.Info("⏭️ Record already being processed, skipping",
			zap.String("record_id", record.ID.String()))
		return nil
	}

	s.logger.Info("🚀 Processing meeting record",
		zap.String("record_id", record.ID.String()),
		zap.String("source_type", string(record.SourceType)))

	if err := s.run(ctx, record); err != nil {
		if failErr := s.tracker.Fail(ctx, record.ID, err.Error()); failErr != nil {
			s.logger.Error("❌ Failed to record pipeline failure",
				zap.String("record_id", record.ID.String()),
				zap.Error(failErr))
		}
		return err
	}

	s.logger.Info("✅ Meeting record processed",
		zap.String("record_id", record.ID.String()))
	return nil
}

// run executes the pipeline stages strictly in order
func (s *service) run(ctx context.Context, record *entities.MeetingRecord) error {
	text, err := s.transcriber.Transcribe(ctx, record)
	if err != nil {
		return err
	}

	if err := s.records.SaveTranscription(ctx, record.ID, text); err != nil {
		return fmt.Errorf("failed to save transcription: %w", err)
	}
	record.Transcription = &text

	summary, fallback := s.extractor.Extract(ctx, text)
	if fallback {
		s.logger.Warn("⚠️ Structured extraction fell back to default summary",
			zap.String("record_id", record.ID.String()))
	}

	if err := s.decomposer.Decompose(ctx, record, summary); err != nil {
		return err
	}

	if err := s.records.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update record fields: %w", err)
	}

	analysis, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to serialize summary: %w", err)
	}

	if err := s.tracker.Complete(ctx, record.ID, analysis); err != nil {
		return fmt.Errorf("failed to mark record completed: %w", err)
	}
	return nil
}

// Reprocess resets a record and dispatches a full fresh run. Child rows of
// the previous run (including participants supplied at upload time) are
// removed first so decomposition does not duplicate them.
func (s *service) Reprocess(ctx context.Context, recordID uuid.UUID) error {
	record, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record.ProcessingStatus == entities.ProcessingStatusProcessing {
		return entities.ErrAlreadyProcessing
	}

	if err := s.clearChildren(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to clear previous results: %w", err)
	}

	if err := s.tracker.Reset(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to reset record: %w", err)
	}

	s.logger.Info("🔄 Record reset for reprocessing",
		zap.String("record_id", record.ID.String()))

	return s.Dispatch(record.ID)
}

func (s *service) clearChildren(ctx context.Context, recordID uuid.UUID) error {
	if err := s.participants.DeleteByRecordID(ctx, recordID); err != nil {
		return err
	}
	if err := s.topics.DeleteByRecordID(ctx, recordID); err != nil {
		return err
	}
	if err := s.decisions.DeleteByRecordID(ctx, recordID); err != nil {
		return err
	}
	if err := s.actions.DeleteByRecordID(ctx, recordID); err != nil {
		return err
	}
	return s.followUps.DeleteByRecordID(ctx, recordID)
}

// Tracker exposes the status tracker for read access
func (s *service) Tracker() *StatusTracker {
	return s.tracker
}

// Release stops the worker pool. Pending tasks are abandoned; records stuck
// in PROCESSING can be reprocessed after restart.
func (s *service) Release() {
	s.pool.Release()
}
