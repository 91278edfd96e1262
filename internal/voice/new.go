package voice

import (
	"context"

	"nova-assistant/pkg/log"
	"nova-assistant/pkg/speech"
)

func New(l log.Logger, recognizer speech.Recognizer) *Controller {
	return &Controller{
		l:          l,
		recognizer: recognizer,
		active:     make(map[string]context.CancelFunc),
	}
}
