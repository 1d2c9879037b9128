package llm

import "errors"

var (
	// ErrUnavailable means the model server could not be reached.
	ErrUnavailable = errors.New("model server unavailable")

	// ErrTimeout means the call outlived its task timeout.
	ErrTimeout = errors.New("model request timed out")

	// ErrInvalidOutput means the reply held no usable JSON payload.
	ErrInvalidOutput = errors.New("invalid model output")

	// ErrRetryExhausted means every attempt failed with a non-network error.
	ErrRetryExhausted = errors.New("model retry attempts exhausted")
)
