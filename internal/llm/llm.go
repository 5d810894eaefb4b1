// Package llm wraps the external text-completion collaborator behind a
// prompt-in, text-out interface.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"company-research/internal/config"
)

// Completer is the contract the QA answerer, report synthesizer, and
// question generator share. Implementations may fail transiently; callers
// propagate such failures unretried.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client is a Completer over any OpenAI-compatible chat completion endpoint.
type Client struct {
	llm   *openai.LLM
	model string
}

func NewClient(cfg *config.LLMConfig) (*Client, error) {
	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llmClient, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing llm client: %w", err)
	}
	return &Client{llm: llmClient, model: cfg.Model}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}
	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
