package nextact

import (
	"errors"

	"nextact/internal/classifier"
)

var (
	// Classification errors pass through Infer unchanged.
	ErrModelUnavailable = classifier.ErrModelUnavailable
	ErrInvalidInput     = classifier.ErrInvalidInput

	ErrEmptyMessage         = errors.New("message is required")
	ErrAssistantUnavailable = errors.New("task assistant is not configured")
	ErrAssistantFailed      = errors.New("task assistant request failed")
)
