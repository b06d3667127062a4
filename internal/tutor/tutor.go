// Package tutor orchestrates a lesson: it walks the teaching state
// machine, phrases each step through the LLM, requests illustrations,
// and keeps per-session progress. External calls always complete before
// any state is committed, so a failed render leaves the session exactly
// where it was.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/store"
	"github.com/abhisek/learno/internal/teaching"
)

var (
	// ErrLessonNotAvailable is returned when the requested
	// grade/subject/lesson combination is not in the catalog whitelist.
	ErrLessonNotAvailable = errors.New("only Grade 2 → Math → Counting is available for now")

	// ErrAIService wraps phrasing failures. The lesson state is left
	// untouched when it is returned.
	ErrAIService = errors.New("the AI teacher is unavailable right now")
)

// Speaker renders one teacher turn from a prompt. Implemented by
// phrasing.Phraser.
type Speaker interface {
	Say(ctx context.Context, purpose, prompt string) (string, error)
}

// Illustrator turns an image description into a URL. Implemented by
// images.Generator.
type Illustrator interface {
	Generate(ctx context.Context, description string) (string, error)
}

// StartRequest carries the (already sanitized) fields for StartLesson.
type StartRequest struct {
	StudentID   string
	StudentName string
	Grade       int
	Subject     string
	Lesson      string
}

// Progress is the client-visible position snapshot. It always reflects
// the state committed after the current turn rendered.
type Progress struct {
	LessonPhase    string `json:"lesson_phase"`
	CurrentConcept int    `json:"current_concept"`
	TotalConcepts  int    `json:"total_concepts"`
	ConceptPhase   string `json:"concept_phase"`
	TotalCorrect   int    `json:"total_correct"`
	TotalWrong     int    `json:"total_wrong"`
}

// Turn is one rendered teacher turn.
type Turn struct {
	SessionID   string   `json:"session_id,omitempty"`
	MessageType string   `json:"message_type"`
	Text        string   `json:"text"`
	ImageURL    string   `json:"image_url,omitempty"`
	Progress    Progress `json:"progress"`
	IsComplete  bool     `json:"is_complete"`
}

// Summary reports a finished or abandoned lesson.
type Summary struct {
	Message           string `json:"-"`
	ConceptsCompleted int    `json:"concepts_completed"`
	TotalCorrect      int    `json:"total_correct"`
	TotalWrong        int    `json:"total_wrong"`
	IsComplete        bool   `json:"is_complete"`
}

// Tutor drives lessons. Safe for concurrent use across sessions;
// callers serialize requests within one session.
type Tutor struct {
	sessions *session.Store
	catalog  *content.Catalog
	speaker  Speaker
	images   Illustrator    // nil disables illustrations
	journal  store.EventRepo // nil disables the event journal
	log      *logger.Logger

	mu     sync.Mutex
	states map[string]teaching.State
}

// Option configures optional collaborators.
type Option func(*Tutor)

// WithIllustrator enables image generation for steps that ask for one.
func WithIllustrator(il Illustrator) Option {
	return func(t *Tutor) { t.images = il }
}

// WithJournal enables event journaling. Journal failures are logged and
// never fail a teaching operation.
func WithJournal(events store.EventRepo) Option {
	return func(t *Tutor) { t.journal = events }
}

// New builds a Tutor over the given session store, catalog, and speaker.
func New(sessions *session.Store, catalog *content.Catalog, speaker Speaker, log *logger.Logger, opts ...Option) *Tutor {
	t := &Tutor{
		sessions: sessions,
		catalog:  catalog,
		speaker:  speaker,
		log:      log,
		states:   make(map[string]teaching.State),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// session looks up a live session. When the store reports the session
// gone (unknown or expired) the teaching state is dropped too.
func (t *Tutor) session(id string) (*session.Session, error) {
	sess, err := t.sessions.Get(id)
	if err != nil {
		t.dropState(id)
		return nil, err
	}
	return sess, nil
}

func (t *Tutor) state(id string) teaching.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.states[id]; ok {
		return s
	}
	return teaching.NewState()
}

func (t *Tutor) commit(id string, s teaching.State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[id] = s
}

func (t *Tutor) dropState(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, id)
}

// chapterFor resolves a lesson identifier to chapter content, falling
// back to the default chapter for whitelisted lessons without authored
// content of their own.
func (t *Tutor) chapterFor(lesson string) *content.Chapter {
	if ch, ok := t.catalog.Chapter(lesson); ok {
		return ch
	}
	return t.catalog.DefaultChapter()
}

func progressFor(s teaching.State, ch *content.Chapter) Progress {
	return Progress{
		LessonPhase:    string(s.LessonPhase),
		CurrentConcept: s.ConceptIndex + 1,
		TotalConcepts:  ch.TotalConcepts(),
		ConceptPhase:   string(s.ConceptPhase),
		TotalCorrect:   s.TotalCorrect,
		TotalWrong:     s.TotalWrong,
	}
}

// aiServiceError classifies a phrasing failure for the transport layer
// while keeping the cause in the message.
func aiServiceError(err error) error {
	return fmt.Errorf("%w: %v", ErrAIService, err)
}
