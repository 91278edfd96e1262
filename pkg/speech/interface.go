package speech

import (
	"context"
	"errors"
)

// ErrUnavailable indicates no speech capability is configured on this host.
var ErrUnavailable = errors.New("speech capability unavailable")

// RecognitionConfig is the fixed configuration for a single activation.
type RecognitionConfig struct {
	LanguageCode    string
	SingleUtterance bool
	InterimResults  bool
}

// DefaultRecognitionConfig returns the fixed config used by the voice controller:
// one utterance, no interim results, en-US.
func DefaultRecognitionConfig() RecognitionConfig {
	return RecognitionConfig{
		LanguageCode:    DefaultLanguageCode,
		SingleUtterance: true,
		InterimResults:  false,
	}
}

// Recognizer transcribes a single spoken utterance.
type Recognizer interface {
	// Recognize returns the final transcript for the given audio payload.
	Recognize(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer renders text as speech audio.
type Synthesizer interface {
	// Synthesize returns encoded audio for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
