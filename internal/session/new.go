package session

import (
	"github.com/google/uuid"

	"nova-assistant/internal/intent"
	"nova-assistant/pkg/log"
	"nova-assistant/pkg/speech"
)

// Config is the dependency bag for a session.
type Config struct {
	Logger      log.Logger
	Classifier  *intent.Classifier
	Generator   Generator
	Synthesizer speech.Synthesizer // optional; nil disables spoken replies
}

// New creates an idle session with an empty log.
func New(cfg Config) *Session {
	return &Session{
		id:          uuid.NewString(),
		l:           cfg.Logger,
		classifier:  cfg.Classifier,
		generator:   cfg.Generator,
		synthesizer: cfg.Synthesizer,
		state:       StateIdle,
		spoken:      make(map[string][]byte),
	}
}
