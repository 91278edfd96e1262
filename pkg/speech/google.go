package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	speechapi "google.golang.org/api/speech/v1"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// GoogleRecognizer implements Recognizer on Google Cloud Speech-to-Text.
type GoogleRecognizer struct {
	service *speechapi.Service
	config  RecognitionConfig
}

// GoogleSynthesizer implements Synthesizer on Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	service *texttospeech.Service
	voice   string
}

// NewGoogleRecognizerFromCredentialsFile creates a Speech-to-Text client from a
// Service Account JSON file path.
func NewGoogleRecognizerFromCredentialsFile(ctx context.Context, credentialsPath string, cfg RecognitionConfig) (*GoogleRecognizer, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, speechapi.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := speechapi.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}

	if cfg.LanguageCode == "" {
		cfg.LanguageCode = DefaultLanguageCode
	}

	return &GoogleRecognizer{service: svc, config: cfg}, nil
}

// Recognize transcribes a single utterance from the given audio payload.
func (r *GoogleRecognizer) Recognize(ctx context.Context, audio []byte) (string, error) {
	req := &speechapi.RecognizeRequest{
		Config: &speechapi.RecognitionConfig{
			Encoding:        DefaultAudioEncoding,
			SampleRateHertz: DefaultSampleRateHertz,
			LanguageCode:    r.config.LanguageCode,
			MaxAlternatives: 1,
		},
		Audio: &speechapi.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := r.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	// Single utterance: take the top alternative of the first result.
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			return result.Alternatives[0].Transcript, nil
		}
	}

	return "", nil
}

// NewGoogleSynthesizerFromCredentialsFile creates a Text-to-Speech client from a
// Service Account JSON file path.
func NewGoogleSynthesizerFromCredentialsFile(ctx context.Context, credentialsPath string, voice string) (*GoogleSynthesizer, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, texttospeech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := texttospeech.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}

	return &GoogleSynthesizer{service: svc, voice: voice}, nil
}

// Synthesize renders the given text as MP3 audio.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: DefaultLanguageCode,
			Name:         s.voice,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: DefaultSynthesisEncoding,
		},
	}

	resp, err := s.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode synthesized audio: %w", err)
	}

	return audio, nil
}
