package suggest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient calls any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a chat client from cfg.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"); apiURL != "" {
		clientCfg.BaseURL = apiURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Generate sends prompt as a system+user chat and returns the first choice.
func (c *OpenAIClient) Generate(ctx context.Context, prompt Prompt) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt.User})

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("call openai model: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai model returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.New("openai model returned empty content")
	}

	log.Printf("OpenAIClient: model=%s responded in %v (%d chars)", c.model, time.Since(start), len(text))
	return text, nil
}
