package meeting

// UploadRequest represents the multipart form fields of an upload. The file
// itself is read from the "file" form part.
type UploadRequest struct {
	MeetingName  string `form:"meetingName" validate:"required,min=1,max=255"`
	MeetingTopic string `form:"meetingTopic" validate:"omitempty,max=500"`
	Location     string `form:"location" validate:"omitempty,max=255"`
	Language     string `form:"language" validate:"omitempty,max=10"`
	// MeetingDate uses the "2006-01-02 15:04:05" layout
	MeetingDate string `form:"meetingDate" validate:"omitempty"`
	// Participants is a JSON array of ParticipantInfo
	Participants string `form:"participants" validate:"omitempty"`
}

// ParticipantInfo is one entry of the participants form field
type ParticipantInfo struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
}

// ListRequest represents query parameters for listing meeting records
type ListRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}
