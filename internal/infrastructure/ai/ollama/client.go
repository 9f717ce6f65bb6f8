// Package ollama provides the advisor chat integration over a local
// Ollama server for deployments that cannot call an external API.
package ollama

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

// Client implements the AdvisorService interface against the Ollama
// chat API.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new Ollama advisor client.
func NewClient(cfg *config.Config, logger *zap.Logger) outbound.AdvisorService {
	return &Client{
		baseURL: cfg.AI.BaseURL,
		model:   cfg.AI.Model,
		client:  &http.Client{Timeout: cfg.AI.RequestTimeout},
		logger:  logger.Named("advisor-ollama"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// Chat sends one consultation turn and returns the reply text.
func (c *Client) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

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

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode advisor response: %w", err)
	}
	if completion.Message.Content == "" {
		return "", fmt.Errorf("advisor returned empty reply")
	}

	return completion.Message.Content, nil
}
