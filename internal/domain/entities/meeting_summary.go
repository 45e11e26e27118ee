package entities

// StructuredSummary is the analysis model's output contract. Field names
// match the JSON the model is prompted to produce; the whole struct is also
// what gets persisted into meeting_records.analysis_result.
type StructuredSummary struct {
	BasicInfo        *BasicInfo        `json:"basicInfo"`
	DiscussionPoints []DiscussionPoint `json:"discussionPoints"`
	Decisions        []DecisionEntry   `json:"decisions"`
	ActionItems      []ActionItemEntry `json:"actionItems"`
	FollowUps        []FollowUpEntry   `json:"followUps"`
}

type BasicInfo struct {
	MeetingName  string   `json:"meetingName"`
	MeetingTopic string   `json:"meetingTopic"`
	MeetingDate  string   `json:"meetingDate"`
	Location     string   `json:"location"`
	Participants []string `json:"participants"`
}

type DiscussionPoint struct {
	TopicTitle       string        `json:"topicTitle"`
	TopicDescription string        `json:"topicDescription"`
	DiscussionPoints []string      `json:"discussionPoints"`
	SpeakerViews     []SpeakerView `json:"speakerViews"`
	TopicOrder       *int          `json:"topicOrder"`
}

type SpeakerView struct {
	SpeakerName string `json:"speakerName"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	View        string `json:"view"`
}

type DecisionEntry struct {
	DecisionTitle   string   `json:"decisionTitle"`
	DecisionContent string   `json:"decisionContent"`
	DecisionType    string   `json:"decisionType"`
	ConsensusLevel  string   `json:"consensusLevel"`
	DecisionMakers  []string `json:"decisionMakers"`
	DecisionDate    FlexTime `json:"decisionDate"`
	EffectiveDate   FlexTime `json:"effectiveDate"`
}

type ActionItemEntry struct {
	TaskDescription   string   `json:"taskDescription"`
	ResponsiblePerson string   `json:"responsiblePerson"`
	Department        string   `json:"department"`
	Priority          string   `json:"priority"`
	DueDate           FlexTime `json:"dueDate"`
	Status            string   `json:"status"`
	ProgressNotes     string   `json:"progressNotes"`
	RelatedTopicID    *int64   `json:"relatedTopicId"`
}

type FollowUpEntry struct {
	IssueTitle           string   `json:"issueTitle"`
	IssueDescription     string   `json:"issueDescription"`
	UnresolvedReason     string   `json:"unresolvedReason"`
	FollowUpPlan         string   `json:"followUpPlan"`
	NextMeetingDate      FlexTime `json:"nextMeetingDate"`
	ResponsiblePerson    string   `json:"responsiblePerson"`
	Department           string   `json:"department"`
	Priority             string   `json:"priority"`
	Status               string   `json:"status"`
	TargetResolutionDate FlexTime `json:"targetResolutionDate"`
}

// Placeholder values used when analysis cannot produce a usable summary.
const (
	DefaultMeetingName = "未命名会议"
	DefaultMeetingDate = "未知时间"
	DefaultLocation    = "未知地点"
)

// DefaultSummary returns the fallback summary used whenever structured
// extraction fails. All lists are empty, never nil.
func DefaultSummary() *StructuredSummary {
	return &StructuredSummary{
		BasicInfo: &BasicInfo{
			MeetingName:  DefaultMeetingName,
			MeetingDate:  DefaultMeetingDate,
			Location:     DefaultLocation,
			Participants: []string{},
		},
		DiscussionPoints: []DiscussionPoint{},
		Decisions:        []DecisionEntry{},
		ActionItems:      []ActionItemEntry{},
		FollowUps:        []FollowUpEntry{},
	}
}
