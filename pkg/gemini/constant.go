package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultRetryDelay is the base delay between retries; attempt n waits n times this.
	DefaultRetryDelay = 500 * time.Millisecond

	apiKeyHeader = "x-goog-api-key"
)
