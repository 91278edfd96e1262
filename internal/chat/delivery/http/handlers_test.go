package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nova-assistant/config"
	"nova-assistant/internal/intent"
	"nova-assistant/internal/middleware"
	"nova-assistant/internal/session"
	"nova-assistant/internal/voice"
	"nova-assistant/pkg/response"
	"nova-assistant/pkg/timephrase"
)

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

type mockGenerator struct{}

func (m *mockGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	return "a generated answer", nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver, err := timephrase.New("UTC")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}

	store, err := session.NewStore(16, session.Config{
		Logger:     &mockLogger{},
		Classifier: intent.New(resolver),
		Generator:  &mockGenerator{},
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	l := &mockLogger{}
	h := New(l, store, voice.New(l, nil))
	mw := middleware.New(l, &config.Config{
		Chat: config.ChatConfig{RateLimitPerMin: 6000},
	})

	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1/chat"), h, mw)
	return engine, store
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestCreateSession(t *testing.T) {
	engine, store := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/chat/sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	resp := decodeResp(t, w)
	data := resp.Data.(map[string]interface{})
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("create did not return a session id: %s", w.Body.String())
	}
	if _, err := store.Get(id); err != nil {
		t.Errorf("created session not in store: %v", err)
	}
}

func TestDetailSession_NotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/chat/sessions/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSubmitAndDetail(t *testing.T) {
	engine, store := newTestRouter(t)
	sess := store.Create()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/chat/sessions/"+sess.ID()+"/messages",
		submitReq{Text: "what time is it"})
	if w.Code != http.StatusOK {
		t.Fatalf("submit failed with status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/chat/sessions/"+sess.ID(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detail failed with status %d", w.Code)
	}

	resp := decodeResp(t, w)
	data := resp.Data.(map[string]interface{})
	msgs, _ := data["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Errorf("expected 2 messages in the log, got %d", len(msgs))
	}
}

func TestSubmit_BusyConflict(t *testing.T) {
	engine, store := newTestRouter(t)
	sess := store.Create()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/chat/sessions/"+sess.ID()+"/messages",
		submitReq{Text: "who made you"})
	if w.Code != http.StatusOK {
		t.Fatalf("first submit failed with status %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/chat/sessions/"+sess.ID()+"/messages",
		submitReq{Text: "what is your name"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 while a reply is pending, got %d", w.Code)
	}

	// Let the canned reply land before the store evicts/tears down
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && sess.AwaitingResponse() {
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartVoice_Unavailable(t *testing.T) {
	engine, store := newTestRouter(t)
	sess := store.Create()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/chat/sessions/"+sess.ID()+"/voice",
		voiceReq{Audio: "aGVsbG8="})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when speech is unavailable, got %d", w.Code)
	}
}

func TestSpeech_NotFound(t *testing.T) {
	engine, store := newTestRouter(t)
	sess := store.Create()

	w := doJSON(t, engine, http.MethodGet, "/api/v1/chat/sessions/"+sess.ID()+"/speech/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unspoken message, got %d", w.Code)
	}
}
