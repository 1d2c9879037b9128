package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "submit-idea",
		Duration: 15 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"sections": 4},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "export-idea",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case use_case=submit-idea duration_ms=15 success=true sections=4")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
