package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.0-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// PromptConciseAnswer is the fixed template applied to every forwarded question.
const PromptConciseAnswer = "Please provide a concise and genuine answer to the following question. Keep your response brief and to the point: %s"
