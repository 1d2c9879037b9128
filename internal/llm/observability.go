package llm

import (
	"log/slog"
)

// CallEvent describes one completed model call.
type CallEvent struct {
	Task      TaskType
	Model     string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives an event after every model call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver writes call events as structured log lines.
type SlogObserver struct {
	logger *slog.Logger
}

func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnCallComplete(e CallEvent) {
	attrs := []any{
		"task", string(e.Task),
		"model", e.Model,
		"attempts", e.Attempts,
		"latency_ms", e.LatencyMs,
		"success", e.Success,
	}
	if e.Success {
		o.logger.Info("llm_call", attrs...)
		return
	}
	o.logger.Warn("llm_call", append(attrs, "error_code", e.ErrorCode)...)
}

// NoopObserver discards events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
