package llmprovider

import (
	"context"

	"nova-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateAnswer implements Provider interface
func (a *GeminiAdapter) GenerateAnswer(ctx context.Context, question string) (string, error) {
	answer, err := a.client.GenerateAnswer(ctx, question)
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	return answer, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
