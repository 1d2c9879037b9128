package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of model call being made.
type TaskType string

const (
	TaskDraft   TaskType = "draft"
	TaskSuggest TaskType = "suggest"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig configures the optional model-backed assistant.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the defaults. The model backend is off unless
// enabled explicitly.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskDraft:   {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
			TaskSuggest: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 8000},
		},
	}
}

// LoadConfig reads DOCSPACE_LLM_* variables over the defaults. Malformed
// values are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("DOCSPACE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DOCSPACE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DOCSPACE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DOCSPACE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DOCSPACE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DOCSPACE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskDraft, "DOCSPACE_LLM_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSuggest, "DOCSPACE_LLM_SUGGEST_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the task-specific timeout, or the global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
