package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func reply(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(generateReply{Model: "llama3.2", Response: text})
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body generateBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3.2", body.Model)
		assert.False(t, body.Stream)
		assert.Equal(t, "system prompt", body.System)
		assert.Equal(t, "user prompt", body.Prompt)
		assert.Equal(t, 4096, body.Options.NumPredict)

		reply(w, `{"name":"Shop"}`)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewOllamaClient(testConfig(srv.URL+"/"), obs)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskDraft,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Shop"}`, resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, TaskDraft, obs.events[0].Task)
	assert.Equal(t, 1, obs.events[0].Attempts)
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskSuggest] = TaskConfig{TimeoutMs: 50}

	obs := &recordingObserver{}
	client := NewOllamaClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSuggest, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "TIMEOUT", obs.events[0].ErrorCode)
	assert.Equal(t, 2, obs.events[0].Attempts)
}

func TestOllamaClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDraft, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_Generate_RetriesTransientError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		reply(w, "ok")
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDraft, UserPrompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestOllamaClient_Generate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDraft, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "bad request")
}

func TestOllamaClient_Generate_CancelledContextStopsRetrying(t *testing.T) {
	var attempts atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	// Runs before srv.Close so a handler still blocked lets Close return.
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewOllamaClient(cfg, nil)
	_, err := client.Generate(ctx, GenerateRequest{Task: TaskDraft, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, NewOllamaClient(testConfig(srv.URL), nil).Available(context.Background()))
	assert.False(t, NewOllamaClient(testConfig("http://127.0.0.1:1"), nil).Available(context.Background()))
}
