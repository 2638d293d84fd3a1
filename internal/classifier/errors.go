package classifier

import "errors"

var (
	// ErrModelUnavailable is returned on every call when the process started without a usable
	// model artifact. It persists until the process is restarted with a valid artifact.
	ErrModelUnavailable = errors.New("classification model is not available")
	ErrInvalidInput     = errors.New("text must be a non-empty UTF-8 string")
)
