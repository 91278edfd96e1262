package http

import (
	"nova-assistant/internal/session"
	"nova-assistant/internal/voice"
	"nova-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	CreateSession(c interface{})
	DetailSession(c interface{})
	SubmitMessage(c interface{})
	StartVoice(c interface{})
	StopVoice(c interface{})
	Speech(c interface{})
}

type handler struct {
	l     log.Logger
	store *session.Store
	voice *voice.Controller
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, store *session.Store, vc *voice.Controller) *handler {
	return &handler{
		l:     l,
		store: store,
		voice: vc,
	}
}
