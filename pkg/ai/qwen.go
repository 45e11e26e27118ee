package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

const analysisSystemPrompt = "你是一个专业的会议纪要分析师，专门负责从会议录音或文档中提取结构化信息。\n" +
	"你需要将会议内容分析成结构化的JSON格式，包含以下部分：\n" +
	"1. 会议基本信息（会议名称、会议时间、会议地点、参会人员）\n" +
	"2. 议题讨论（分点列出关键议题及各方观点）\n" +
	"3. 决策事项（明确达成的共识、决议）\n" +
	"4. 行动项（责任人、任务描述、截止时间）\n" +
	"5. 待跟进问题（未解决的议题及后续计划）\n" +
	"请确保输出格式严格为JSON，不包含任何其他内容。"

// QwenClient calls the chat completion endpoint of the DashScope API
type QwenClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// ChatMessage is a single message in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat completion request payload
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatResponse is the chat completion response payload
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewQwenClient creates a new Qwen chat client
func NewQwenClient(cfg *config.QwenConfig) *QwenClient {
	return &QwenClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
	}
}

// AnalyzeTranscript asks the model to turn a meeting transcript into the
// structured JSON summary and returns the raw completion text
func (c *QwenClient) AnalyzeTranscript(ctx context.Context, transcript string) (string, error) {
	payload := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: 0.2,
		MaxTokens:   4000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("chat api returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
