package entities

import "errors"

// Domain errors
var (
	// Record errors
	ErrMeetingRecordNotFound = errors.New("meeting record not found")

	// Artifact errors
	ErrArtifactMissing   = errors.New("artifact file missing")
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// Pipeline errors
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrAlreadyProcessing   = errors.New("record is already being processed")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
