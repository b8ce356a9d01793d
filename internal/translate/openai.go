package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ppiankov/truthlens/internal/model"
)

// OpenAIClient translates through the Chat Completions API
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates a new OpenAI translation client
func NewOpenAIClient(cfg model.TranslationConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   chatModel,
		timeout: timeout,
	}, nil
}

// Name returns the provider name
func (c *OpenAIClient) Name() string { return "openai" }

// Translate converts text from src to dst
func (c *OpenAIClient) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if text == "" {
		return "", nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a translation engine. Reply with the translation only. Preserve placeholder tokens such as __NUM0__ or __TOK3__ verbatim.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text from %s to %s:\n\n%s", src, dst, text),
			},
		},
		Temperature: 0,
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty translation")
	}

	return out, nil
}
