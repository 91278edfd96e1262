package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nova-assistant/internal/intent"
	"nova-assistant/internal/model"
	"nova-assistant/internal/session"
	"nova-assistant/pkg/timephrase"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockGenerator struct {
	answer string
	err    error
}

func (m *mockGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	return m.answer, m.err
}

type mockSynthesizer struct {
	audio []byte
	err   error
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return m.audio, m.err
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestSession(t *testing.T, gen session.Generator) *session.Session {
	t.Helper()

	resolver, err := timephrase.New("UTC")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}

	return session.New(session.Config{
		Logger:     &mockLogger{},
		Classifier: intent.New(resolver),
		Generator:  gen,
	})
}

// waitIdle blocks until the session finishes its in-flight turn.
func waitIdle(t *testing.T, s *session.Session) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if !s.AwaitingResponse() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("session did not return to idle")
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestSubmit_EmptyInput(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	for _, text := range []string{"", "   ", "\n\t"} {
		if err := s.Submit(context.Background(), text, false); err != nil {
			t.Errorf("blank submit returned error: %v", err)
		}
	}

	if len(s.Messages()) != 0 {
		t.Errorf("blank submits must not touch the log, got %d messages", len(s.Messages()))
	}
	if s.AwaitingResponse() {
		t.Errorf("blank submit must not change state")
	}
}

func TestSubmit_Provenance(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if err := s.Submit(context.Background(), "who made you", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !s.AwaitingResponse() {
		t.Errorf("expected awaiting state during the canned-reply delay")
	}

	waitIdle(t, s)

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != model.RoleUser || msgs[0].Text != "who made you" {
		t.Errorf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Role != model.RoleAssistant || msgs[1].Text != intent.ResponseProvenance {
		t.Errorf("unexpected assistant message: %+v", msgs[1])
	}
}

func TestSubmit_Identity(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if err := s.Submit(context.Background(), "what is your name", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	waitIdle(t, s)

	msgs := s.Messages()
	if len(msgs) != 2 || msgs[1].Text != intent.ResponseIdentity {
		t.Fatalf("unexpected log after identity turn: %+v", msgs)
	}
}

func TestSubmit_DateTimeImmediate(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if err := s.Submit(context.Background(), "what time is it", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// No artificial delay: the reply is in the log when Submit returns
	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected immediate reply, got %d messages", len(msgs))
	}
	if msgs[1].Role != model.RoleAssistant {
		t.Errorf("second message should be the assistant reply")
	}
	if s.AwaitingResponse() {
		t.Errorf("date/time turn must end idle")
	}
}

func TestSubmit_RemoteSuccess(t *testing.T) {
	s := newTestSession(t, &mockGenerator{answer: "Why did the gopher cross the road?"})

	if err := s.Submit(context.Background(), "tell me a joke", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	waitIdle(t, s)

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Text != "Why did the gopher cross the road?" {
		t.Errorf("unexpected remote answer: %q", msgs[1].Text)
	}
}

func TestSubmit_RemoteFailure(t *testing.T) {
	s := newTestSession(t, &mockGenerator{err: errors.New("quota exceeded")})

	if err := s.Submit(context.Background(), "tell me a joke", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	waitIdle(t, s)

	// No assistant message on failure, only the user entry
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected only the user message after remote failure, got %d", len(msgs))
	}
	if msgs[0].Role != model.RoleUser {
		t.Errorf("surviving message should be the user's")
	}
}

func TestSubmit_BusyRejected(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if err := s.Submit(context.Background(), "who made you", false); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	err := s.Submit(context.Background(), "what is your name", false)
	if !errors.Is(err, session.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	waitIdle(t, s)

	// The rejected submission must not have touched the log
	if len(s.Messages()) != 2 {
		t.Errorf("expected 2 messages after the first turn only, got %d", len(s.Messages()))
	}
}

func TestClose_DuringCannedDelay(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if err := s.Submit(context.Background(), "what is your name", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	s.Close()

	time.Sleep(intent.IdentityDelay + 200*time.Millisecond)

	// Teardown during the delay must not mutate the disposed log
	if len(s.Messages()) != 1 {
		t.Errorf("closed session gained a message, log: %+v", s.Messages())
	}

	if err := s.Submit(context.Background(), "hello again", false); !errors.Is(err, session.ErrClosed) {
		t.Errorf("expected ErrClosed on submit after close, got %v", err)
	}
}

func TestSubmit_VoiceEcho(t *testing.T) {
	resolver, _ := timephrase.New("UTC")
	s := session.New(session.Config{
		Logger:      &mockLogger{},
		Classifier:  intent.New(resolver),
		Generator:   &mockGenerator{},
		Synthesizer: &mockSynthesizer{audio: []byte("mp3-bytes")},
	})

	if err := s.Submit(context.Background(), "what time is it", true); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected immediate reply, got %d messages", len(msgs))
	}

	// Synthesis is fire-and-forget; poll for the cached audio
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if audio, ok := s.SpokenAudio(msgs[1].ID); ok {
			if string(audio) != "mp3-bytes" {
				t.Errorf("unexpected audio payload")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("spoken audio never appeared for the assistant reply")
}

func TestSubmit_TextTurnDoesNotSpeak(t *testing.T) {
	resolver, _ := timephrase.New("UTC")
	s := session.New(session.Config{
		Logger:      &mockLogger{},
		Classifier:  intent.New(resolver),
		Generator:   &mockGenerator{},
		Synthesizer: &mockSynthesizer{audio: []byte("mp3-bytes")},
	})

	if err := s.Submit(context.Background(), "what time is it", false); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	msgs := s.Messages()
	time.Sleep(100 * time.Millisecond)
	if _, ok := s.SpokenAudio(msgs[1].ID); ok {
		t.Errorf("typed turns must not produce spoken audio")
	}
}

func TestListeningFlag(t *testing.T) {
	s := newTestSession(t, &mockGenerator{})

	if s.Listening() {
		t.Errorf("new session must not be listening")
	}
	s.SetListening(true)
	if !s.Listening() {
		t.Errorf("listening flag not set")
	}
	s.SetListening(false)
	if s.Listening() {
		t.Errorf("listening flag not cleared")
	}
}
