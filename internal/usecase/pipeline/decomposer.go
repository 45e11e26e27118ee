package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// Decomposer maps a StructuredSummary onto the relational child tables and
// the basic-info columns of the meeting record. Per-field problems (unknown
// enum labels, bad dates) degrade to defaults with a warning; a row is never
// dropped for them.
type Decomposer struct {
	participants repositories.ParticipantRepository
	topics       repositories.TopicRepository
	decisions    repositories.DecisionRepository
	actions      repositories.ActionItemRepository
	followUps    repositories.FollowUpRepository
	logger       *zap.Logger
}

// NewDecomposer creates a new decomposer
func NewDecomposer(
	participants repositories.ParticipantRepository,
	topics repositories.TopicRepository,
	decisions repositories.DecisionRepository,
	actions repositories.ActionItemRepository,
	followUps repositories.FollowUpRepository,
	logger *zap.Logger,
) *Decomposer {
	return &Decomposer{
		participants: participants,
		topics:       topics,
		decisions:    decisions,
		actions:      actions,
		followUps:    followUps,
		logger:       logger,
	}
}

// Decompose persists the summary's collections as child rows and applies the
// basic-info overwrites to the record in memory. The caller persists the
// record itself.
func (d *Decomposer) Decompose(ctx context.Context, record *entities.MeetingRecord, summary *entities.StructuredSummary) error {
	if summary.BasicInfo != nil {
		if err := d.applyBasicInfo(ctx, record, summary.BasicInfo); err != nil {
			return fmt.Errorf("failed to save participants: %w", err)
		}
	}
	if err := d.saveTopics(ctx, record, summary.DiscussionPoints); err != nil {
		return fmt.Errorf("failed to save topics: %w", err)
	}
	if err := d.saveDecisions(ctx, record, summary.Decisions); err != nil {
		return fmt.Errorf("failed to save decisions: %w", err)
	}
	if err := d.saveActionItems(ctx, record, summary.ActionItems); err != nil {
		return fmt.Errorf("failed to save action items: %w", err)
	}
	if err := d.saveFollowUps(ctx, record, summary.FollowUps); err != nil {
		return fmt.Errorf("failed to save follow-ups: %w", err)
	}
	return nil
}

// applyBasicInfo overwrites record fields present in the summary and stores
// the named participants
func (d *Decomposer) applyBasicInfo(ctx context.Context, record *entities.MeetingRecord, info *entities.BasicInfo) error {
	if info.MeetingName != "" {
		record.MeetingName = info.MeetingName
	}
	if info.MeetingTopic != "" {
		topic := info.MeetingTopic
		record.MeetingTopic = &topic
	}
	if info.Location != "" {
		location := info.Location
		record.Location = &location
	}

	if len(info.Participants) == 0 {
		return nil
	}

	participants := make([]*entities.Participant, 0, len(info.Participants))
	for _, name := range info.Participants {
		if name == "" {
			continue
		}
		p := entities.NewParticipant(record.ID, name)
		attended := entities.AttendanceStatusAttended
		p.AttendanceStatus = &attended
		participants = append(participants, p)
	}
	return d.participants.CreateBatch(ctx, participants)
}

// saveTopics stores one row per discussion point, keeping the discussion
// order. Missing explicit order falls back to the 1-based list position.
func (d *Decomposer) saveTopics(ctx context.Context, record *entities.MeetingRecord, points []entities.DiscussionPoint) error {
	if len(points) == 0 {
		return nil
	}

	topics := make([]*entities.Topic, 0, len(points))
	for i, point := range points {
		order := i + 1
		if point.TopicOrder != nil {
			order = *point.TopicOrder
		}

		topic := entities.NewTopic(record.ID, point.TopicTitle, order)
		topic.TopicDescription = optional(point.TopicDescription)
		topic.DiscussionPoints = joinList(point.DiscussionPoints)
		topic.SpeakerViews = formatSpeakerViews(point.SpeakerViews)
		topics = append(topics, topic)
	}
	return d.topics.CreateBatch(ctx, topics)
}

func (d *Decomposer) saveDecisions(ctx context.Context, record *entities.MeetingRecord, entries []entities.DecisionEntry) error {
	if len(entries) == 0 {
		return nil
	}

	decisions := make([]*entities.Decision, 0, len(entries))
	for _, entry := range entries {
		decision := entities.NewDecision(record.ID, entry.DecisionTitle)
		decision.DecisionContent = optional(entry.DecisionContent)
		decision.DecisionType = optional(entry.DecisionType)
		decision.ConsensusLevel = optional(entry.ConsensusLevel)
		decision.DecisionMakers = joinList(entry.DecisionMakers)
		decision.DecisionDate = d.flexDate(record, "decision date", entry.DecisionDate)
		decision.EffectiveDate = d.flexDate(record, "effective date", entry.EffectiveDate)
		decisions = append(decisions, decision)
	}
	return d.decisions.CreateBatch(ctx, decisions)
}

func (d *Decomposer) saveActionItems(ctx context.Context, record *entities.MeetingRecord, entries []entities.ActionItemEntry) error {
	if len(entries) == 0 {
		return nil
	}

	items := make([]*entities.ActionItem, 0, len(entries))
	for _, entry := range entries {
		item := entities.NewActionItem(record.ID, entry.TaskDescription)
		item.ResponsiblePerson = optional(entry.ResponsiblePerson)
		item.Department = optional(entry.Department)
		item.Priority = d.parsePriority(record, entry.Priority)
		item.DueDate = d.flexDate(record, "due date", entry.DueDate)
		if status := d.parseActionStatus(record, entry.Status); status != "" {
			item.Status = status
		}
		item.ProgressNotes = optional(entry.ProgressNotes)
		item.RelatedTopicID = entry.RelatedTopicID
		items = append(items, item)
	}
	return d.actions.CreateBatch(ctx, items)
}

func (d *Decomposer) saveFollowUps(ctx context.Context, record *entities.MeetingRecord, entries []entities.FollowUpEntry) error {
	if len(entries) == 0 {
		return nil
	}

	followUps := make([]*entities.FollowUp, 0, len(entries))
	for _, entry := range entries {
		followUp := entities.NewFollowUp(record.ID, entry.IssueTitle)
		followUp.IssueDescription = optional(entry.IssueDescription)
		followUp.UnresolvedReason = optional(entry.UnresolvedReason)
		followUp.FollowUpPlan = optional(entry.FollowUpPlan)
		followUp.NextMeetingDate = d.flexDate(record, "next meeting date", entry.NextMeetingDate)
		followUp.ResponsiblePerson = optional(entry.ResponsiblePerson)
		followUp.Department = optional(entry.Department)
		if priority := d.parsePriority(record, entry.Priority); priority != "" {
			followUp.Priority = priority
		}
		if status := d.parseFollowUpStatus(record, entry.Status); status != "" {
			followUp.Status = status
		}
		followUp.TargetResolutionDate = d.flexDate(record, "target resolution date", entry.TargetResolutionDate)
		followUps = append(followUps, followUp)
	}
	return d.followUps.CreateBatch(ctx, followUps)
}

// parsePriority applies the enum policy: blank stays unset, a known label
// matches case-insensitively, anything else warns and defaults to MEDIUM
func (d *Decomposer) parsePriority(record *entities.MeetingRecord, value string) entities.ActionPriority {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if priority, ok := entities.ParseActionPriority(value); ok {
		return priority
	}
	d.logger.Warn("⚠️ Unrecognized priority, defaulting to MEDIUM",
		zap.String("record_id", record.ID.String()),
		zap.String("value", value))
	return entities.ActionPriorityMedium
}

func (d *Decomposer) parseActionStatus(record *entities.MeetingRecord, value string) entities.ActionItemStatus {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if status, ok := entities.ParseActionItemStatus(value); ok {
		return status
	}
	d.logger.Warn("⚠️ Unrecognized action item status, defaulting to PENDING",
		zap.String("record_id", record.ID.String()),
		zap.String("value", value))
	return entities.ActionItemStatusPending
}

func (d *Decomposer) parseFollowUpStatus(record *entities.MeetingRecord, value string) entities.FollowUpStatus {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if status, ok := entities.ParseFollowUpStatus(value); ok {
		return status
	}
	d.logger.Warn("⚠️ Unrecognized follow-up status, defaulting to OPEN",
		zap.String("record_id", record.ID.String()),
		zap.String("value", value))
	return entities.FollowUpStatusOpen
}

// flexDate converts a tolerant timestamp, logging values no layout matched
func (d *Decomposer) flexDate(record *entities.MeetingRecord, field string, t entities.FlexTime) *time.Time {
	if raw := t.Unparsed(); raw != "" {
		d.logger.Warn("⚠️ Date parse failed, leaving unset",
			zap.String("record_id", record.ID.String()),
			zap.String("field", field),
			zap.String("value", raw))
	}
	return t.Ptr()
}

// optional converts a possibly empty string into a nullable column value
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// joinList flattens a bullet list into one comma-joined column value
func joinList(list []string) *string {
	if len(list) == 0 {
		return nil
	}
	joined := strings.Join(list, ", ")
	return &joined
}

// formatSpeakerViews flattens speaker views into "name(role): view" lines
func formatSpeakerViews(views []entities.SpeakerView) *string {
	if len(views) == 0 {
		return nil
	}
	lines := make([]string, 0, len(views))
	for _, view := range views {
		lines = append(lines, fmt.Sprintf("%s(%s): %s", view.SpeakerName, view.Role, view.View))
	}
	joined := strings.Join(lines, "\n")
	return &joined
}
