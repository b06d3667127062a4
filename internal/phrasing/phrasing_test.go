package phrasing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/learno/internal/llm"
)

func TestSay_ExtractsText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"text":"Hello, little friend! 😊"}`)},
	)
	p := New(mock, DefaultConfig())

	got, err := p.Say(context.Background(), "welcome", "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, little friend! 😊" {
		t.Errorf("text = %q", got)
	}

	req := mock.Calls[0]
	if req.System != teacherPersona {
		t.Error("request should carry the teacher persona")
	}
	if req.Schema != SpeechSchema {
		t.Error("request should ask for the speech schema")
	}
	if req.Messages[0].Content != "say hello" {
		t.Errorf("user message = %q", req.Messages[0].Content)
	}
	if req.MaxTokens != 500 {
		t.Errorf("MaxTokens = %d, want 500", req.MaxTokens)
	}
}

func TestSay_TrimsWhitespace(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"text":"  Great job! 🎉  "}`)},
	)
	p := New(mock, DefaultConfig())

	got, err := p.Say(context.Background(), "praise", "praise the child")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Great job! 🎉" {
		t.Errorf("text = %q", got)
	}
}

func TestSay_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := New(mock, DefaultConfig())

	_, err := p.Say(context.Background(), "welcome", "say hello")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestSay_EmptyTurnRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"text":"   "}`)},
	)
	p := New(mock, DefaultConfig())

	_, err := p.Say(context.Background(), "welcome", "say hello")
	if err == nil {
		t.Fatal("expected error for empty turn")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestSay_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	p := New(mock, DefaultConfig())

	if _, err := p.Say(context.Background(), "welcome", "say hello"); err == nil {
		t.Fatal("expected error for malformed response")
	}
}
