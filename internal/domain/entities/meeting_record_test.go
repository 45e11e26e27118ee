package entities

import "testing"

func TestDetermineSourceType(t *testing.T) {
	tests := []struct {
		filename string
		want     SourceType
	}{
		{"recording.mp3", SourceTypeAudio},
		{"RECORDING.WAV", SourceTypeAudio},
		{"voice.m4a", SourceTypeAudio},
		{"notes.txt", SourceTypeDocument},
		{"minutes.pdf", SourceTypeDocument},
		{"report.docx", SourceTypeDocument},
		{"noextension", SourceTypeDocument},
	}

	for _, tt := range tests {
		if got := DetermineSourceType(tt.filename); got != tt.want {
			t.Errorf("DetermineSourceType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestParseActionPriority(t *testing.T) {
	tests := []struct {
		input string
		want  ActionPriority
		ok    bool
	}{
		{"high", ActionPriorityHigh, true},
		{"HIGH", ActionPriorityHigh, true},
		{" medium ", ActionPriorityMedium, true},
		{"low", ActionPriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseActionPriority(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseActionPriority(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseActionItemStatus(t *testing.T) {
	tests := []struct {
		input string
		want  ActionItemStatus
		ok    bool
	}{
		{"pending", ActionItemStatusPending, true},
		{"In_Progress", ActionItemStatusInProgress, true},
		{"COMPLETED", ActionItemStatusCompleted, true},
		{"cancelled", ActionItemStatusCancelled, true},
		{"done", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseActionItemStatus(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseActionItemStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFollowUpStatus(t *testing.T) {
	tests := []struct {
		input string
		want  FollowUpStatus
		ok    bool
	}{
		{"open", FollowUpStatusOpen, true},
		{"in_progress", FollowUpStatusInProgress, true},
		{"Resolved", FollowUpStatusResolved, true},
		{"CLOSED", FollowUpStatusClosed, true},
		{"stale", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFollowUpStatus(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFollowUpStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewMeetingRecordDefaults(t *testing.T) {
	record := NewMeetingRecord("周会", SourceTypeAudio, "a.mp3", "uploads/a.mp3")
	if record.ProcessingStatus != ProcessingStatusPending {
		t.Fatalf("new record must start PENDING, got %q", record.ProcessingStatus)
	}
	if record.IsCompleted() || record.IsFailed() {
		t.Fatal("new record must not be terminal")
	}
	if record.ProcessingError != nil || record.ProcessedAt != nil {
		t.Fatal("new record must not carry error or processed_at")
	}
}
