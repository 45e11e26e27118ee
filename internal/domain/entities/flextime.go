package entities

import (
	"encoding/json"
	"strings"
	"time"
)

var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// FlexTime is a tolerant timestamp for model-produced JSON. Unmarshalling
// never fails: null, empty strings and unparseable values leave the time
// zero. Unparsed reports the raw value when no layout matched, so callers
// can log it.
type FlexTime struct {
	time.Time
	raw string
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	t.raw = ""

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// not a JSON string (number, object, ...), keep the raw token
		t.raw = strings.TrimSpace(string(data))
		if t.raw == "null" {
			t.raw = ""
		}
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	t.raw = s
	return nil
}

// MarshalJSON writes the parsed time as RFC3339. A value no layout matched
// is written back verbatim so re-serializing a summary stays lossless.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.raw != "" {
		return json.Marshal(t.raw)
	}
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Unparsed returns the original value when it was present but no layout
// matched, and "" otherwise.
func (t FlexTime) Unparsed() string {
	return t.raw
}

// Ptr returns the parsed time, or nil when unset.
func (t FlexTime) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	parsed := t.Time
	return &parsed
}
