package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

const transcribePrompt = "请将这段会议录音转写为文字"

// BailianClient calls the speech-to-text endpoint of the DashScope Bailian
// API
type BailianClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// ASRRequest is the transcription request payload
type ASRRequest struct {
	Audio          string `json:"audio"`
	Prompt         string `json:"prompt"`
	Language       string `json:"language"`
	ResponseFormat string `json:"response_format"`
}

// NewBailianClient creates a new Bailian speech client
func NewBailianClient(cfg *config.BailianConfig) *BailianClient {
	return &BailianClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
	}
}

// Transcribe sends audio bytes for transcription and returns the recognized
// text. The response is scanned for a "result" field; when the scan finds
// nothing the raw body is returned as-is, which keeps partially conforming
// responses usable.
func (c *BailianClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	payload := ASRRequest{
		Audio:          base64.StdEncoding.EncodeToString(audio),
		Prompt:         transcribePrompt,
		Language:       "zh",
		ResponseFormat: "json",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal asr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/asr", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create asr request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("asr request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read asr response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("asr api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return extractResult(string(respBody)), nil
}

// extractResult pulls the value of the "result" field out of the response
// with a plain substring scan
func extractResult(response string) string {
	const marker = `"result":"`
	start := strings.Index(response, marker)
	if start < 0 {
		return response
	}
	start += len(marker)
	end := strings.Index(response[start:], `"`)
	if end < 0 {
		return response
	}
	return response[start : start+end]
}
