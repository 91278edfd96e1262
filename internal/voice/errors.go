package voice

import "errors"

var (
	ErrAlreadyListening = errors.New("voice capture already in progress")
	ErrNotListening     = errors.New("no voice capture in progress")
)
