package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/http/middleware"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
)

// Client talks to the OpenAI chat completions API. Tuning (temperature,
// max_tokens) is fixed: the relay only needs short conversational replies.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Complete sends the system preamble plus the turn history and returns the
// raw assistant reply.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []entity.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openai not configured")
	}

	apiMessages := make([]chatMessage, 0, len(messages)+1)
	apiMessages = append(apiMessages, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range messages {
		if m.Role != entity.RoleUser && m.Role != entity.RoleAssistant {
			continue
		}
		apiMessages = append(apiMessages, chatMessage{Role: m.Role, Content: m.Content})
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    apiMessages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		middleware.RecordCompletionError()
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		middleware.RecordCompletionError()
		return "", fmt.Errorf("completion request failed: %d - %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("completion error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
