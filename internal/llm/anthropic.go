package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicMessager is the subset of the Anthropic client used here.
// Tests substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// NewAnthropicMessager creates the real Messages API client.
func NewAnthropicMessager(apiKey string) AnthropicMessager {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &client.Messages
}

type anthropicClient struct {
	cfg      LLMConfig
	messages AnthropicMessager
	observer Observer
}

// NewAnthropicClient creates an LLMClient backed by the Anthropic Messages
// API. A nil messager is built from cfg.Cloud.APIKey.
func NewAnthropicClient(cfg LLMConfig, messages AnthropicMessager, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if messages == nil && cfg.Cloud.APIKey != "" {
		messages = NewAnthropicMessager(cfg.Cloud.APIKey)
	}
	return &anthropicClient{cfg: cfg, messages: messages, observer: observer}
}

func (c *anthropicClient) Model() string { return c.cfg.Cloud.Model }

// Available reports whether the cloud tier is configured. It does not call
// the API.
func (c *anthropicClient) Available(context.Context) bool {
	return c.cfg.Cloud.Enabled && c.messages != nil
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !c.Available(ctx) {
		return nil, ErrCloudUnavailable
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.Cloud.TimeoutMs)*time.Millisecond)
	defer cancel()

	maxTokens := c.cfg.Cloud.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Cloud.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	} else if tc, ok := c.cfg.Tasks[req.Task]; ok {
		params.Temperature = anthropic.Float(tc.Temperature)
	}

	msg, err := c.messages.New(ctx, params)
	if err == nil {
		text := messageText(msg)
		if text == "" {
			err = fmt.Errorf("%w: empty response", ErrInvalidOutput)
		} else {
			latency := time.Since(start).Milliseconds()
			c.observe(req.Task, latency, nil)
			return &GenerateResponse{Text: text, Model: c.cfg.Cloud.Model, LatencyMs: latency}, nil
		}
	}

	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		err = ErrTimeout
	} else if !errors.Is(err, ErrInvalidOutput) {
		err = fmt.Errorf("anthropic messages: %w", err)
	}
	c.observe(req.Task, time.Since(start).Milliseconds(), err)
	return nil, err
}

func (c *anthropicClient) observe(task TaskType, latency int64, err error) {
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Provider:  ProviderAnthropic,
		Model:     c.cfg.Cloud.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func messageText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
