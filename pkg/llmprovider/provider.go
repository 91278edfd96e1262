package llmprovider

import "context"

// Provider defines the interface for text-generation providers.
type Provider interface {
	// GenerateAnswer sends a question and returns the provider's answer text
	GenerateAnswer(ctx context.Context, question string) (string, error)

	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}
