package llm

import "errors"

var (
	// ErrUnavailable indicates the chat-completions endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrMissingAPIKey indicates a generation call was made without an
	// API key configured.
	ErrMissingAPIKey = errors.New("llm api key not set")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
