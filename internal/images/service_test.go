package images

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &Generator{
		client: openai.NewClientWithConfig(config),
		model:  openai.CreateImageModelDallE2,
		cache:  newURLCache(),
	}
}

func TestGenerate_ReturnsURL(t *testing.T) {
	var gotPrompt string
	handler := func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt, _ = req["prompt"].(string)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1234567890,
			"data":    []map[string]any{{"url": "https://img.example/apples.png"}},
		})
	}

	g := newTestGenerator(t, handler)
	url, err := g.Generate(context.Background(), "3 red apples in a row")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://img.example/apples.png" {
		t.Errorf("url = %q", url)
	}
	// The marker description rides inside the child-friendly base prompt.
	if gotPrompt == "" || gotPrompt == "3 red apples in a row" {
		t.Errorf("prompt should wrap the description, got %q", gotPrompt)
	}
}

func TestGenerate_CachesByDescription(t *testing.T) {
	var calls atomic.Int32
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]any{{"url": "https://img.example/cat.png"}},
		})
	}

	g := newTestGenerator(t, handler)
	ctx := context.Background()

	if _, err := g.Generate(ctx, "a friendly cat"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := g.Generate(ctx, "A Friendly Cat"); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls.Load())
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		})
	}

	g := newTestGenerator(t, handler)
	if _, err := g.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_EmptyData(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]any{},
		})
	}

	g := newTestGenerator(t, handler)
	if _, err := g.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestNewGenerator_RequiresKey(t *testing.T) {
	if _, err := NewGenerator(Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	g, err := NewGenerator(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ModelID() != "dall-e-2" {
		t.Errorf("default model = %q, want dall-e-2", g.ModelID())
	}
}
