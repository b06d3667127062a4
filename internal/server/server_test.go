package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learno/internal/config"
	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/tutor"
)

type stubSpeaker struct {
	fail bool
}

func (s *stubSpeaker) Say(_ context.Context, purpose, _ string) (string, error) {
	if s.fail {
		return "", errors.New("provider down")
	}
	return "ok:" + purpose, nil
}

type testServer struct {
	srv      *Server
	speaker  *stubSpeaker
	sessions *session.Store
	now      time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		speaker: &stubSpeaker{},
		now:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	ts.sessions = session.NewStore(30*time.Minute, session.WithClock(func() time.Time {
		return ts.now
	}))

	tut := tutor.New(ts.sessions, content.NewCatalog(), ts.speaker, logger.Nop())
	cfg := config.Default()
	cfg.Mode = "test"
	ts.srv = New(Options{
		Config:   cfg,
		Tutor:    tut,
		Sessions: ts.sessions,
		Log:      logger.Nop(),
		Version:  "1.2.3",
	})
	return ts
}

type reply struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type turnPayload struct {
	SessionID   string `json:"session_id"`
	MessageType string `json:"message_type"`
	Text        string `json:"text"`
	ImageURL    string `json:"image_url"`
	Progress    struct {
		LessonPhase    string `json:"lesson_phase"`
		CurrentConcept int    `json:"current_concept"`
		TotalConcepts  int    `json:"total_concepts"`
		ConceptPhase   string `json:"concept_phase"`
		TotalCorrect   int    `json:"total_correct"`
		TotalWrong     int    `json:"total_wrong"`
	} `json:"progress"`
	IsComplete bool `json:"is_complete"`
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (int, reply) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	var r reply
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, r
}

func (ts *testServer) turn(t *testing.T, r reply) turnPayload {
	t.Helper()
	var p turnPayload
	if err := json.Unmarshal(r.Data, &p); err != nil {
		t.Fatalf("decode turn payload %q: %v", r.Data, err)
	}
	return p
}

func (ts *testServer) start(t *testing.T) string {
	t.Helper()
	code, r := ts.do(t, http.MethodPost, "/api/v1/session/start", map[string]any{
		"grade": 2, "subject": "math", "lesson": "counting",
	})
	if code != http.StatusOK {
		t.Fatalf("start status = %d: %s", code, r.Message)
	}
	return ts.turn(t, r).SessionID
}

func TestStartEndpoint(t *testing.T) {
	ts := newTestServer(t)

	code, r := ts.do(t, http.MethodPost, "/api/v1/session/start", map[string]any{
		"student_id":   "kid-1",
		"student_name": "Mina",
		"grade":        2,
		"subject":      "Math",
		"lesson":       "Counting",
	})

	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if r.Status != "success" || r.Message != "Lesson started successfully" {
		t.Errorf("envelope = %s / %s", r.Status, r.Message)
	}

	p := ts.turn(t, r)
	if p.SessionID == "" {
		t.Error("missing session_id")
	}
	if p.MessageType != "welcome" || p.Text != "ok:welcome" {
		t.Errorf("turn = %s / %q", p.MessageType, p.Text)
	}
	if p.Progress.LessonPhase != "welcome" || p.Progress.TotalConcepts != 5 {
		t.Errorf("progress = %+v", p.Progress)
	}
}

func TestStartValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing subject", map[string]any{"grade": 2, "lesson": "counting"}},
		{"missing lesson", map[string]any{"grade": 2, "subject": "math"}},
		{"blank lesson", map[string]any{"grade": 2, "subject": "math", "lesson": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, r := ts.do(t, http.MethodPost, "/api/v1/session/start", tt.body)
			if code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", code)
			}
			if r.Status != "error" || !strings.HasPrefix(r.Message, "INVALID_INPUT:") {
				t.Errorf("envelope = %s / %s", r.Status, r.Message)
			}
		})
	}
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/start", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INVALID_INPUT") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestStartNotAvailable(t *testing.T) {
	ts := newTestServer(t)

	code, r := ts.do(t, http.MethodPost, "/api/v1/session/start", map[string]any{
		"grade": 5, "subject": "math", "lesson": "counting",
	})
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if !strings.HasPrefix(r.Message, "LESSON_NOT_AVAILABLE:") {
		t.Errorf("message = %q", r.Message)
	}
}

func TestAIServiceUnavailable(t *testing.T) {
	ts := newTestServer(t)
	ts.speaker.fail = true

	code, r := ts.do(t, http.MethodPost, "/api/v1/session/start", map[string]any{
		"grade": 2, "subject": "math", "lesson": "counting",
	})
	if code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", code)
	}
	if !strings.HasPrefix(r.Message, "AI_SERVICE_ERROR:") {
		t.Errorf("message = %q", r.Message)
	}
}

func TestLessonFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.start(t)

	// Walk to the first guided question.
	var p turnPayload
	for i := 0; i < 4; i++ {
		code, r := ts.do(t, http.MethodPost, "/api/v1/lesson/continue", map[string]any{
			"session_id": sid,
		})
		if code != http.StatusOK {
			t.Fatalf("continue %d: status = %d: %s", i, code, r.Message)
		}
		if r.Message != "Teaching continued" {
			t.Fatalf("continue message = %q", r.Message)
		}
		p = ts.turn(t, r)
	}
	if p.MessageType != "guided_practice" {
		t.Fatalf("step 4 = %q, want guided_practice", p.MessageType)
	}

	// A wrong answer earns a hint and no movement.
	code, r := ts.do(t, http.MethodPost, "/api/v1/lesson/respond", map[string]any{
		"session_id": sid, "transcript": "banana",
	})
	if code != http.StatusOK || r.Message != "Response processed" {
		t.Fatalf("respond: %d %q", code, r.Message)
	}
	p = ts.turn(t, r)
	if p.MessageType != "hint" || p.Progress.TotalWrong != 1 {
		t.Errorf("wrong answer turn = %s, wrong = %d", p.MessageType, p.Progress.TotalWrong)
	}

	// The right answer moves on.
	code, r = ts.do(t, http.MethodPost, "/api/v1/lesson/respond", map[string]any{
		"session_id": sid, "transcript": "it is 2!",
	})
	if code != http.StatusOK {
		t.Fatalf("respond: %d", code)
	}
	p = ts.turn(t, r)
	if p.Progress.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", p.Progress.TotalCorrect)
	}
	if !strings.HasPrefix(p.Text, "ok:praise") {
		t.Errorf("text = %q, want praise prefix", p.Text)
	}
}

func TestSilenceEndpoint(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.start(t)

	code, r := ts.do(t, http.MethodPost, "/api/v1/lesson/silence", map[string]any{
		"session_id": sid, "silence_duration": 15,
	})
	if code != http.StatusOK || r.Message != "Hint provided" {
		t.Fatalf("silence: %d %q", code, r.Message)
	}
	p := ts.turn(t, r)
	if p.MessageType != "silence_hint" {
		t.Errorf("message type = %q", p.MessageType)
	}
	if p.IsComplete {
		t.Error("silence must not complete the lesson")
	}

	code, r = ts.do(t, http.MethodPost, "/api/v1/lesson/silence", map[string]any{
		"session_id": sid, "silence_duration": 0,
	})
	if code != http.StatusBadRequest || !strings.HasPrefix(r.Message, "INVALID_INPUT:") {
		t.Errorf("zero duration: %d %q", code, r.Message)
	}
}

func TestEndEndpoint(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.start(t)

	code, r := ts.do(t, http.MethodPost, "/api/v1/session/end", map[string]any{
		"session_id": sid,
	})
	if code != http.StatusOK {
		t.Fatalf("end: %d", code)
	}
	if r.Message != "Great effort today! 🌟" {
		t.Errorf("message = %q", r.Message)
	}

	var summary struct {
		ConceptsCompleted int  `json:"concepts_completed"`
		TotalCorrect      int  `json:"total_correct"`
		TotalWrong        int  `json:"total_wrong"`
		IsComplete        bool `json:"is_complete"`
	}
	if err := json.Unmarshal(r.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.IsComplete || summary.ConceptsCompleted != 0 {
		t.Errorf("summary = %+v", summary)
	}

	// The session is gone now.
	code, r = ts.do(t, http.MethodPost, "/api/v1/session/end", map[string]any{
		"session_id": sid,
	})
	if code != http.StatusNotFound || !strings.HasPrefix(r.Message, "SESSION_NOT_FOUND:") {
		t.Errorf("second end: %d %q", code, r.Message)
	}
}

func TestSessionExpiry(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.start(t)

	ts.now = ts.now.Add(31 * time.Minute)

	code, r := ts.do(t, http.MethodPost, "/api/v1/lesson/continue", map[string]any{
		"session_id": sid,
	})
	if code != http.StatusGone {
		t.Errorf("status = %d, want 410", code)
	}
	if !strings.HasPrefix(r.Message, "SESSION_EXPIRED:") {
		t.Errorf("message = %q", r.Message)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	code, r := ts.do(t, http.MethodGet, "/health", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	var data struct {
		Status         string `json:"status"`
		Service        string `json:"service"`
		ActiveSessions int    `json:"active_sessions"`
	}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Status != "healthy" || data.ActiveSessions != 0 {
		t.Errorf("health = %+v", data)
	}

	ts.start(t)
	_, r = ts.do(t, http.MethodGet, "/health", nil)
	if err := json.Unmarshal(r.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.ActiveSessions != 1 {
		t.Errorf("active sessions = %d, want 1", data.ActiveSessions)
	}
}

func TestBannerAndFlowDocs(t *testing.T) {
	ts := newTestServer(t)

	code, r := ts.do(t, http.MethodGet, "/", nil)
	if code != http.StatusOK {
		t.Fatalf("banner status = %d", code)
	}
	var banner struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(r.Data, &banner); err != nil {
		t.Fatalf("decode banner: %v", err)
	}
	if banner.Service != "learno" || banner.Version != "1.2.3" {
		t.Errorf("banner = %+v", banner)
	}

	code, r = ts.do(t, http.MethodGet, "/api/v1/teaching-flow", nil)
	if code != http.StatusOK {
		t.Fatalf("flow status = %d", code)
	}
	var flow struct {
		SilenceThreshold int `json:"silence_threshold_seconds"`
	}
	if err := json.Unmarshal(r.Data, &flow); err != nil {
		t.Fatalf("decode flow: %v", err)
	}
	if flow.SilenceThreshold != config.Default().SilenceThreshold {
		t.Errorf("silence threshold = %d", flow.SilenceThreshold)
	}
}
