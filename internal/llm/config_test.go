package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskDraft))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskSuggest))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DOCSPACE_LLM_ENABLED", "true")
	t.Setenv("DOCSPACE_LLM_MODEL", "mistral")
	t.Setenv("DOCSPACE_LLM_TIMEOUT_MS", "9000")
	t.Setenv("DOCSPACE_LLM_MAX_RETRIES", "3")
	t.Setenv("DOCSPACE_LLM_SUGGEST_TIMEOUT_MS", "4000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskSuggest))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskDraft))
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("DOCSPACE_LLM_DRAFT_TIMEOUT_MS", "not-a-number")
	t.Setenv("DOCSPACE_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TaskTimeout(TaskDraft))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks[TaskSuggest] = TaskConfig{}
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskSuggest))
}
