// Package openai provides the advisor chat integration over an
// OpenAI-compatible chat completions API. The engine treats the reply
// as opaque free text.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/infrastructure/config"
	"github.com/vitabox/v1/internal/ports/outbound"
)

// Client implements the AdvisorService interface using an
// OpenAI-compatible API.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new advisor client. Without an API key the
// client answers with a canned consultation reply so the engine flow
// stays usable in development.
func NewClient(cfg *config.Config, logger *zap.Logger) outbound.AdvisorService {
	if cfg.AI.APIKey == "" {
		logger.Info("Advisor API key not set, using canned replies")
	}
	return &Client{
		baseURL:     cfg.AI.BaseURL,
		apiKey:      cfg.AI.APIKey,
		model:       cfg.AI.Model,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
		client:      &http.Client{Timeout: cfg.AI.RequestTimeout},
		logger:      logger.Named("advisor"),
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Chat sends one consultation turn and returns the reply text.
func (c *Client) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return cannedReply, nil
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Advisor request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Advisor returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("advisor API status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode advisor response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("advisor returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// cannedReply is returned when no API key is configured. It carries a
// marked recommendation block so the extraction path stays exercised.
const cannedReply = `안녕하세요! 말씀해주신 고민을 바탕으로 기본적인 영양 관리를 안내드립니다.
규칙적인 식사와 충분한 수면이 가장 중요하며, 아래 영양제가 도움이 될 수 있습니다.

[영양제 추천]
- 비타민C : 1정
- 유산균 : 1정`
