package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// ChatClient asks the analysis model for a structured summary of a transcript
type ChatClient interface {
	AnalyzeTranscript(ctx context.Context, transcript string) (string, error)
}

// Extractor turns a transcript into a StructuredSummary. Extraction never
// fails: any problem (transport, bad completion, malformed JSON) yields the
// default summary with the fallback flag set.
type Extractor struct {
	chat   ChatClient
	logger *zap.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(chat ChatClient, logger *zap.Logger) *Extractor {
	return &Extractor{chat: chat, logger: logger}
}

// Extract analyzes the transcript. The bool reports whether the fallback
// summary was used.
func (e *Extractor) Extract(ctx context.Context, transcript string) (*entities.StructuredSummary, bool) {
	content, err := e.chat.AnalyzeTranscript(ctx, transcript)
	if err != nil {
		e.logger.Warn("⚠️ Analysis request failed, using default summary", zap.Error(err))
		return entities.DefaultSummary(), true
	}

	span := extractJSONSpan(content)

	var summary entities.StructuredSummary
	if err := json.Unmarshal([]byte(span), &summary); err != nil {
		e.logger.Warn("⚠️ Analysis output is not valid JSON, using default summary",
			zap.Error(err),
			zap.Int("content_length", len(content)))
		return entities.DefaultSummary(), true
	}

	return &summary, false
}

// extractJSONSpan slices the substring from the first '{' to the last '}'.
// Completions often wrap the JSON in prose or markdown fences; when no span
// exists the text is returned unchanged and fails deserialization upstream.
func extractJSONSpan(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
