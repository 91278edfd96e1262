package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nova-assistant/internal/session"
	"nova-assistant/internal/voice"
	"nova-assistant/pkg/response"
	"nova-assistant/pkg/speech"
)

// ErrNoSpokenAudio means the message was never spoken, or synthesis failed.
var ErrNoSpokenAudio = errors.New("no spoken audio for this message")

// respondError translates domain errors into the HTTP response envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, ErrNoSpokenAudio):
		response.NotFound(c, err)
	case errors.Is(err, session.ErrBusy),
		errors.Is(err, session.ErrClosed),
		errors.Is(err, voice.ErrAlreadyListening),
		errors.Is(err, voice.ErrNotListening):
		response.Conflict(c, err)
	case errors.Is(err, speech.ErrUnavailable):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
