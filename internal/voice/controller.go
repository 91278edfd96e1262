package voice

import (
	"context"
	"strings"
	"sync"

	"nova-assistant/internal/session"
	"nova-assistant/pkg/log"
	"nova-assistant/pkg/speech"
)

// Controller turns one utterance of captured audio into a session
// submission. It enforces single-utterance capture per session: a second
// Start while recognition is in flight is rejected.
type Controller struct {
	l          log.Logger
	recognizer speech.Recognizer

	mu     sync.Mutex
	active map[string]context.CancelFunc
}

// Start transcribes the audio in the background and submits the result to
// the session as a voice turn. It returns immediately after kicking off
// recognition.
func (c *Controller) Start(ctx context.Context, sess *session.Session, audio []byte) error {
	if c.recognizer == nil {
		return speech.ErrUnavailable
	}

	c.mu.Lock()
	if _, ok := c.active[sess.ID()]; ok {
		c.mu.Unlock()
		return ErrAlreadyListening
	}
	recCtx, cancel := context.WithCancel(context.Background())
	c.active[sess.ID()] = cancel
	sess.SetListening(true)
	c.mu.Unlock()

	go c.recognize(recCtx, sess, audio)
	return nil
}

// Stop cancels the in-flight recognition for the session, if any.
func (c *Controller) Stop(sess *session.Session) error {
	c.mu.Lock()
	cancel, ok := c.active[sess.ID()]
	c.mu.Unlock()
	if !ok {
		return ErrNotListening
	}

	cancel()
	return nil
}

// Listening reports whether the session has a capture in flight.
func (c *Controller) Listening(sess *session.Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.active[sess.ID()]
	return ok
}

func (c *Controller) recognize(ctx context.Context, sess *session.Session, audio []byte) {
	defer c.finish(sess)

	transcript, err := c.recognizer.Recognize(ctx, audio)
	if err != nil {
		if ctx.Err() != nil {
			c.l.Infof(ctx, "voice.Controller.recognize: capture cancelled for session %s", sess.ID())
			return
		}
		c.l.Errorf(ctx, "voice.Controller.recognize: %v", err)
		return
	}

	if strings.TrimSpace(transcript) == "" {
		return
	}

	if err := sess.Submit(context.Background(), transcript, true); err != nil {
		c.l.Warnf(ctx, "voice.Controller.recognize: submit rejected: %v", err)
	}
}

func (c *Controller) finish(sess *session.Session) {
	c.mu.Lock()
	if cancel, ok := c.active[sess.ID()]; ok {
		cancel()
		delete(c.active, sess.ID())
	}
	sess.SetListening(false)
	c.mu.Unlock()
}
