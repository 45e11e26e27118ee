package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

func testBailianConfig(url string) *config.BailianConfig {
	return &config.BailianConfig{
		APIKey:         "test-key",
		BaseURL:        url,
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    5 * time.Second,
	}
}

func TestTranscribe_Success(t *testing.T) {
	audio := []byte("fake audio bytes")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/audio/asr" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		var payload ASRRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Audio != base64.StdEncoding.EncodeToString(audio) {
			t.Fatalf("audio not base64 encoded")
		}
		if payload.Language != "zh" || payload.ResponseFormat != "json" {
			t.Fatalf("unexpected payload fields: %+v", payload)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":"大家好，今天开会"}`))
	}))
	defer ts.Close()

	client := NewBailianClient(testBailianConfig(ts.URL))
	text, err := client.Transcribe(context.Background(), audio)
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "大家好，今天开会" {
		t.Fatalf("unexpected transcription %q", text)
	}
}

func TestTranscribe_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer ts.Close()

	client := NewBailianClient(testBailianConfig(ts.URL))
	if _, err := client.Transcribe(context.Background(), []byte("audio")); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestExtractResult(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "result field present",
			response: `{"result":"会议内容","usage":{}}`,
			want:     "会议内容",
		},
		{
			name:     "no result field returns body",
			response: `{"text":"something else"}`,
			want:     `{"text":"something else"}`,
		},
		{
			name:     "unterminated result returns body",
			response: `{"result":"broken`,
			want:     `{"result":"broken`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractResult(tt.response); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}
