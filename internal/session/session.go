package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nova-assistant/internal/intent"
	"nova-assistant/internal/model"
	"nova-assistant/pkg/log"
	"nova-assistant/pkg/speech"
)

// Session owns one conversation: the ordered message log, the turn state
// machine, and the listening flag. All mutation goes through Submit,
// SetListening and Close. Safe for concurrent use.
type Session struct {
	id          string
	l           log.Logger
	classifier  *intent.Classifier
	generator   Generator
	synthesizer speech.Synthesizer

	mu        sync.Mutex
	messages  []model.Message
	state     State
	listening bool
	closed    bool
	pending   *time.Timer // scheduled canned reply, cancelled on Close
	spoken    map[string][]byte
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit accepts one utterance and runs a full turn. Blank text is silently
// ignored. A submission while a previous turn is still in flight returns
// ErrBusy without touching the log. The reply (canned, resolved, or remote)
// lands in the log asynchronously; the session returns to idle when it does.
func (s *Session) Submit(ctx context.Context, text string, fromVoice bool) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrBusy
	}

	s.appendLocked(model.RoleUser, text)
	match := s.classifier.Classify(text)

	switch match.Intent {
	case intent.IntentIdentity, intent.IntentProvenance:
		s.state = StateAwaitingLocal
		response := match.Response
		s.pending = time.AfterFunc(match.Delay, func() {
			s.completeLocal(response, fromVoice)
		})
		s.mu.Unlock()

	case intent.IntentDateTime:
		// Resolved locally, no artificial delay
		msg := s.appendLocked(model.RoleAssistant, match.Response)
		s.mu.Unlock()
		s.speak(msg, fromVoice)

	default:
		s.state = StateAwaitingRemote
		s.mu.Unlock()
		// Detach from the request context: the turn outlives the HTTP request
		go s.completeRemote(context.Background(), text, fromVoice)
	}

	return nil
}

// completeLocal lands a delayed canned reply.
func (s *Session) completeLocal(response string, fromVoice bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	msg := s.appendLocked(model.RoleAssistant, response)
	s.state = StateIdle
	s.pending = nil
	s.mu.Unlock()

	s.speak(msg, fromVoice)
}

// completeRemote forwards the utterance to the generator and lands the answer.
// On failure no assistant message is appended; the session just returns to idle.
func (s *Session) completeRemote(ctx context.Context, text string, fromVoice bool) {
	answer, err := s.generator.GenerateAnswer(ctx, text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state = StateIdle
		s.mu.Unlock()
		s.l.Errorf(ctx, "session %s: remote generation failed: %v", s.id, err)
		return
	}
	msg := s.appendLocked(model.RoleAssistant, answer)
	s.state = StateIdle
	s.mu.Unlock()

	s.speak(msg, fromVoice)
}

// speak synthesizes a spoken-turn reply in the background. Fire-and-forget:
// synthesis failures are logged and swallowed.
func (s *Session) speak(msg model.Message, fromVoice bool) {
	if !fromVoice || s.synthesizer == nil {
		return
	}

	go func() {
		audio, err := s.synthesizer.Synthesize(context.Background(), msg.Text)
		if err != nil {
			s.l.Warnf(context.Background(), "session %s: speech synthesis failed: %v", s.id, err)
			return
		}

		s.mu.Lock()
		if !s.closed {
			s.spoken[msg.ID] = audio
		}
		s.mu.Unlock()
	}()
}

// appendLocked adds a message to the log. Caller holds s.mu.
func (s *Session) appendLocked(role model.Role, text string) model.Message {
	msg := model.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the ordered message log.
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current turn state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AwaitingResponse reports whether a turn is in flight.
func (s *Session) AwaitingResponse() bool {
	return s.State() != StateIdle
}

// Listening reports the voice-input flag.
func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

// SetListening updates the voice-input flag.
func (s *Session) SetListening(v bool) {
	s.mu.Lock()
	s.listening = v
	s.mu.Unlock()
}

// SpokenAudio returns the synthesized audio for an assistant message of a
// voice-originated turn, if synthesis has completed.
func (s *Session) SpokenAudio(messageID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	audio, ok := s.spoken[messageID]
	return audio, ok
}

// Close tears the session down. A pending canned-reply timer is cancelled so
// teardown during the delay cannot mutate a disposed log.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
