package teaching

import (
	"errors"

	"github.com/abhisek/learno/internal/content"
)

// StepKind identifies what a rendered step is. The values double as the
// message_type strings surfaced to clients.
type StepKind string

const (
	StepWelcome             StepKind = "welcome"
	StepIntroduction        StepKind = "concept_introduction"
	StepExplanation         StepKind = "explanation"
	StepVisual              StepKind = "visual_example"
	StepGuidedQuestion      StepKind = "guided_practice"
	StepIndependentQuestion StepKind = "independent_practice"
	StepMasteryCheck        StepKind = "mastery_check"
	StepReviewQuestion      StepKind = "chapter_review"
	StepCelebration         StepKind = "celebration"
	StepHint                StepKind = "hint"
	StepSilenceHint         StepKind = "silence_hint"
)

// AsksQuestion reports whether a step of this kind waits for a learner
// answer before the lesson can move on.
func (k StepKind) AsksQuestion() bool {
	switch k {
	case StepGuidedQuestion, StepIndependentQuestion, StepMasteryCheck, StepReviewQuestion:
		return true
	}
	return false
}

// masteryHint is the fallback hint for concept checks, which carry no
// authored hint of their own.
const masteryHint = "Think about what we just learned!"

// ErrNoStep is returned when chapter content is so malformed that the
// dispatch loop cannot reach a renderable step within its bound.
var ErrNoStep = errors.New("lesson content produced no renderable step")

// Step is the next thing to show the learner, paired with the state to
// commit once it has actually been rendered. Advance never mutates the
// current state itself: callers render first (phrasing, illustration)
// and commit Next only when that succeeds.
type Step struct {
	Kind    StepKind
	Concept *content.Concept  // nil once the chapter review begins
	Question *content.Question // set for question-bearing steps

	QuestionNumber int // 1-based position, independent practice and review only
	QuestionTotal  int
	FirstGuided    bool // first guided question of a concept

	Image string // illustration description to request, if any

	LessonComplete bool
	Next           State
}

// Advance computes the next teaching step from the current state.
// Phases that have nothing left to render (an exhausted question list,
// a finished concept) are skipped by iterating, never by recursing; the
// iteration count is bounded so malformed content fails loudly instead
// of spinning.
func Advance(cur State, ch *content.Chapter) (Step, error) {
	if cur.LessonPhase == PhaseCompleted {
		// Terminal. Re-render the celebration without touching state.
		return Step{Kind: StepCelebration, LessonComplete: true, Next: cur}, nil
	}

	s := cur
	// Each hop either renders, advances a concept, or moves the concept
	// phase forward, so a few hops per concept is the worst case.
	bound := 3*ch.TotalConcepts() + 4

	for hop := 0; hop <= bound; hop++ {
		if s.ConceptIndex >= ch.TotalConcepts() {
			if s.LessonPhase != PhaseChapterReview {
				s.LessonPhase = PhaseChapterReview
				s.ReviewIndex = 0
			}
			if s.ReviewIndex >= len(ch.ReviewQuestions) {
				next := s
				next.LessonPhase = PhaseCompleted
				next.Expectation = nil
				return Step{Kind: StepCelebration, LessonComplete: true, Next: next}, nil
			}
			q := &ch.ReviewQuestions[s.ReviewIndex]
			next := s
			next.Expectation = expectationFor(q, q.Hint)
			return Step{
				Kind:           StepReviewQuestion,
				Question:       q,
				QuestionNumber: s.ReviewIndex + 1,
				QuestionTotal:  len(ch.ReviewQuestions),
				Next:           next,
			}, nil
		}

		con := ch.Concept(s.ConceptIndex)

		switch s.ConceptPhase {
		case ConceptIntroduction:
			next := s
			next.LessonPhase = PhaseTeaching
			next.ConceptPhase = ConceptExplanation
			return Step{Kind: StepIntroduction, Concept: con, Next: next}, nil

		case ConceptExplanation:
			next := s
			next.LessonPhase = PhaseTeaching
			next.ConceptPhase = ConceptVisual
			return Step{Kind: StepExplanation, Concept: con, Next: next}, nil

		case ConceptVisual:
			next := s
			next.LessonPhase = PhaseTeaching
			next.ConceptPhase = ConceptGuided
			next.GuidedIndex = 0
			return Step{Kind: StepVisual, Concept: con, Image: con.VisualDescription, Next: next}, nil

		case ConceptGuided:
			if s.GuidedIndex >= len(con.Guided) {
				s.ConceptPhase = ConceptIndependent
				s.IndependentIndex = 0
				continue
			}
			q := &con.Guided[s.GuidedIndex]
			next := s
			next.LessonPhase = PhaseTeaching
			next.Expectation = expectationFor(q, q.Hint)
			return Step{
				Kind:        StepGuidedQuestion,
				Concept:     con,
				Question:    q,
				FirstGuided: s.GuidedIndex == 0,
				Image:       q.ImagePrompt,
				Next:        next,
			}, nil

		case ConceptIndependent:
			if s.IndependentIndex >= len(con.Independent) {
				s.ConceptPhase = ConceptCheck
				continue
			}
			q := &con.Independent[s.IndependentIndex]
			next := s
			next.LessonPhase = PhaseTeaching
			next.Expectation = expectationFor(q, q.Hint)
			return Step{
				Kind:           StepIndependentQuestion,
				Concept:        con,
				Question:       q,
				QuestionNumber: s.IndependentIndex + 1,
				QuestionTotal:  len(con.Independent),
				Image:          q.ImagePrompt,
				Next:           next,
			}, nil

		case ConceptCheck:
			q := &con.Mastery
			next := s
			next.LessonPhase = PhaseTeaching
			next.Expectation = expectationFor(q, masteryHint)
			return Step{Kind: StepMasteryCheck, Concept: con, Question: q, Next: next}, nil

		case ConceptCompleted:
			s.ConceptIndex++
			s.ConceptPhase = ConceptIntroduction
			s.Attempts = 0
			s.ConsecutiveWrong = 0
			continue

		default:
			s.ConceptPhase = ConceptIntroduction
			continue
		}
	}

	return Step{}, ErrNoStep
}

func expectationFor(q *content.Question, hint string) *Expectation {
	return &Expectation{
		Answer:     q.Answer,
		Acceptable: q.Acceptable,
		Hint:       hint,
	}
}
