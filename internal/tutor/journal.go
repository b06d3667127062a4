package tutor

import (
	"context"
	"time"

	"github.com/abhisek/learno/internal/store"
)

// The journal is observability only. Every append here is best-effort:
// failures are logged and the teaching operation carries on.

func (t *Tutor) journalSession(ctx context.Context, data store.SessionEventData) {
	if t.journal == nil {
		return
	}
	if err := t.journal.AppendSessionEvent(ctx, data); err != nil {
		t.log.Warn("journal session event failed", "session_id", data.SessionID, "error", err)
	}
}

func (t *Tutor) journalStep(ctx context.Context, data store.StepEventData) {
	if t.journal == nil {
		return
	}
	if err := t.journal.AppendStepEvent(ctx, data); err != nil {
		t.log.Warn("journal step event failed", "session_id", data.SessionID, "error", err)
	}
}

func (t *Tutor) journalAnswer(ctx context.Context, data store.AnswerEventData) {
	if t.journal == nil {
		return
	}
	if err := t.journal.AppendAnswerEvent(ctx, data); err != nil {
		t.log.Warn("journal answer event failed", "session_id", data.SessionID, "error", err)
	}
}

func (t *Tutor) journalHint(ctx context.Context, data store.HintEventData) {
	if t.journal == nil {
		return
	}
	if err := t.journal.AppendHintEvent(ctx, data); err != nil {
		t.log.Warn("journal hint event failed", "session_id", data.SessionID, "error", err)
	}
}

func (t *Tutor) journalImage(ctx context.Context, sessionID string, out *imageOutcome) {
	if t.journal == nil || out == nil {
		return
	}
	data := store.ImageEventData{
		SessionID:   sessionID,
		Description: out.description,
		URL:         out.url,
		Success:     out.err == nil,
		LatencyMs:   out.latencyMs,
	}
	if out.err != nil {
		data.ErrorMessage = out.err.Error()
	}
	if err := t.journal.AppendImageEvent(ctx, data); err != nil {
		t.log.Warn("journal image event failed", "session_id", sessionID, "error", err)
	}
}

// imageOutcome records one illustration attempt for the turn being
// rendered. A nil outcome means no illustration was requested.
type imageOutcome struct {
	description string
	url         string
	err         error
	latencyMs   int64
}

// URL is nil-safe so callers can use the outcome without checking
// whether an illustration was attempted.
func (o *imageOutcome) URL() string {
	if o == nil {
		return ""
	}
	return o.url
}

// requestImage generates an illustration for description. Failures are
// recorded on the outcome and logged, never propagated: a step renders
// fine without its picture.
func (t *Tutor) requestImage(ctx context.Context, description string) *imageOutcome {
	if description == "" || t.images == nil {
		return nil
	}

	start := time.Now()
	url, err := t.images.Generate(ctx, description)
	out := &imageOutcome{
		description: description,
		url:         url,
		err:         err,
		latencyMs:   time.Since(start).Milliseconds(),
	}
	if err != nil {
		t.log.Warn("image generation failed", "description", description, "error", err)
	}
	return out
}
