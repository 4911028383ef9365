package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskEnhanceResponse TaskType = "enhance_response"
	TaskBriefing        TaskType = "briefing"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// CloudConfig configures the Anthropic fallback tier.
type CloudConfig struct {
	Enabled   bool
	APIKey    string
	Model     string
	MaxTokens int
	TimeoutMs int
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
	Cloud      CloudConfig
}

// DefaultConfig returns an LLMConfig with workshop defaults: a small local
// model with a short timeout, and no cloud tier.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "gemma2:2b",
		TimeoutMs:  3000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskEnhanceResponse: {Temperature: 0.7, MaxTokens: 400},
			TaskBriefing:        {Temperature: 0.3, MaxTokens: 800, TimeoutMs: 10000},
		},
		Cloud: CloudConfig{
			Enabled:   false,
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 1024,
			TimeoutMs: 3000,
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. The cloud tier is enabled
// whenever ANTHROPIC_API_KEY is set, unless DIALOGUE_CLOUD_ENABLED says otherwise.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("DIALOGUE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DIALOGUE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DIALOGUE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DIALOGUE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := positiveIntEnv("DIALOGUE_LLM_TIMEOUT_MS"); ok {
		cfg.TimeoutMs = n
	}
	if v := os.Getenv("DIALOGUE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	cfg.Cloud.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.Cloud.Enabled = cfg.Cloud.APIKey != ""
	if v := os.Getenv("DIALOGUE_CLOUD_ENABLED"); v != "" {
		enabled, _ := strconv.ParseBool(v)
		cfg.Cloud.Enabled = enabled && cfg.Cloud.APIKey != ""
	}
	if v := os.Getenv("DIALOGUE_CLOUD_MODEL"); v != "" {
		cfg.Cloud.Model = v
	}
	if n, ok := positiveIntEnv("DIALOGUE_CLOUD_TIMEOUT_MS"); ok {
		cfg.Cloud.TimeoutMs = n
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func positiveIntEnv(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
