package phrasing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/learno/internal/llm"
)

// Config controls the token budget and randomness of phrased turns.
type Config struct {
	// MaxTokens is the token budget for one teacher turn.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended phrasing settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// Phraser turns prompt material into spoken teacher turns via the LLM.
type Phraser struct {
	provider llm.Provider
	config   Config
}

// New creates a Phraser over the given provider.
func New(provider llm.Provider, cfg Config) *Phraser {
	return &Phraser{provider: provider, config: cfg}
}

// speechOutput is the raw LLM response before extraction.
type speechOutput struct {
	Text string `json:"text"`
}

// Say sends one prompt to the LLM under the teacher persona and returns
// the utterance. The purpose label ends up on the request's journal
// event.
func (p *Phraser) Say(ctx context.Context, purpose, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: teacherPersona,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      SpeechSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var out speechOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("empty teacher turn"),
		}
	}

	return text, nil
}

// ModelID reports which model phrases the lesson.
func (p *Phraser) ModelID() string {
	return p.provider.ModelID()
}
