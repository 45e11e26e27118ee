package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-manager/pkg/docparse"
)

// SpeechClient converts audio bytes into text
type SpeechClient interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Transcriber turns a stored artifact into text. Audio goes through the
// speech API; documents are dispatched on the stored file extension.
type Transcriber struct {
	store  storage.ArtifactStore
	speech SpeechClient
	logger *zap.Logger
}

// NewTranscriber creates a new transcriber
func NewTranscriber(store storage.ArtifactStore, speech SpeechClient, logger *zap.Logger) *Transcriber {
	return &Transcriber{store: store, speech: speech, logger: logger}
}

// Transcribe produces the text of a meeting record's artifact
func (t *Transcriber) Transcribe(ctx context.Context, record *entities.MeetingRecord) (string, error) {
	data, err := t.store.Read(ctx, record.FilePath)
	if err != nil {
		return "", err
	}

	if record.SourceType == entities.SourceTypeAudio {
		t.logger.Info("🎙️ Transcribing audio artifact",
			zap.String("record_id", record.ID.String()),
			zap.Int("bytes", len(data)))
		text, err := t.speech.Transcribe(ctx, data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", entities.ErrTranscriptionFailed, err)
		}
		return text, nil
	}

	return t.extractDocument(record, data)
}

// extractDocument dispatches on the stored artifact extension
func (t *Transcriber) extractDocument(record *entities.MeetingRecord, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(record.FilePath))

	t.logger.Info("📄 Extracting document artifact",
		zap.String("record_id", record.ID.String()),
		zap.String("extension", ext))

	switch ext {
	case ".txt":
		return docparse.FromTxt(data)
	case ".pdf":
		return docparse.FromPDF(data)
	case ".doc", ".docx":
		return docparse.FromWord(data)
	default:
		return "", fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, record.OriginalFileName)
	}
}
