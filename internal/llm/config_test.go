package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_WorkshopDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemma2:2b", cfg.Model)
	assert.Equal(t, 3000, cfg.TaskTimeout(TaskEnhanceResponse))
	assert.Equal(t, 0.7, cfg.Tasks[TaskEnhanceResponse].Temperature)
	assert.Equal(t, 400, cfg.Tasks[TaskEnhanceResponse].MaxTokens)
	assert.False(t, cfg.Cloud.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DIALOGUE_LLM_ENABLED", "false")
	t.Setenv("DIALOGUE_LLM_MODEL", "llama3.2")
	t.Setenv("DIALOGUE_LLM_TIMEOUT_MS", "9000")
	t.Setenv("DIALOGUE_LLM_MAX_RETRIES", "2")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskEnhanceResponse))
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskBriefing))
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("DIALOGUE_LLM_TIMEOUT_MS", "not-a-number")
	assert.Equal(t, 3000, LoadConfig().TimeoutMs)
}

func TestLoadConfig_CloudFollowsAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("DIALOGUE_CLOUD_ENABLED", "true")
	assert.False(t, LoadConfig().Cloud.Enabled, "no key, no cloud")

	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("DIALOGUE_CLOUD_ENABLED", "")
	t.Setenv("DIALOGUE_CLOUD_TIMEOUT_MS", "5000")
	cfg := LoadConfig()
	assert.True(t, cfg.Cloud.Enabled)
	assert.Equal(t, "sk-test", cfg.Cloud.APIKey)
	assert.Equal(t, 5000, cfg.Cloud.TimeoutMs)

	t.Setenv("DIALOGUE_CLOUD_ENABLED", "false")
	assert.False(t, LoadConfig().Cloud.Enabled)
}
