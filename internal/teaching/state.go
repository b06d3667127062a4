package teaching

// LessonPhase is the top-level state of a session. Phases only move
// forward; PhaseCompleted is terminal.
type LessonPhase string

const (
	PhaseWelcome       LessonPhase = "welcome"
	PhaseTeaching      LessonPhase = "teaching"
	PhaseChapterReview LessonPhase = "chapter_review"
	PhaseCelebration   LessonPhase = "celebration"
	PhaseCompleted     LessonPhase = "completed"
)

// ConceptPhase is the sub-state while teaching one concept. It cycles
// once per concept, then the concept index advances and the phase
// resets to ConceptIntroduction.
type ConceptPhase string

const (
	ConceptIntroduction ConceptPhase = "introduction"
	ConceptExplanation  ConceptPhase = "explanation"
	ConceptVisual       ConceptPhase = "visual_example"
	ConceptGuided       ConceptPhase = "guided_practice"
	ConceptIndependent  ConceptPhase = "independent_practice"
	ConceptCheck        ConceptPhase = "concept_check"
	ConceptCompleted    ConceptPhase = "completed"
)

// StepsPerConcept is how many rendered steps a concept contributes to a
// session's expected total: introduction, explanation, visual example,
// guided practice, independent practice, and the concept check.
const StepsPerConcept = 6

// Expectation is the answer snapshot stashed when a question is
// rendered and consumed by the next evaluation.
type Expectation struct {
	Answer     string
	Acceptable []string
	Hint       string
}

// State tracks where a session is in teaching the chapter. It is a
// plain value: transitions return a new State and never mutate the
// receiver, so callers can render external content first and commit the
// new state only on success.
type State struct {
	LessonPhase  LessonPhase
	ConceptIndex int
	ConceptPhase ConceptPhase

	GuidedIndex      int
	IndependentIndex int
	ReviewIndex      int

	Attempts         int // wrong attempts at the current question
	ConsecutiveWrong int
	TotalCorrect     int
	TotalWrong       int

	Expectation *Expectation
}

// NewState returns the starting state for a fresh session.
func NewState() State {
	return State{
		LessonPhase:  PhaseWelcome,
		ConceptPhase: ConceptIntroduction,
	}
}

// NeedsExtraHelp reports whether the learner is struggling. It is
// derived from the consecutive-wrong streak and is never stored.
func (s State) NeedsExtraHelp() bool {
	return s.ConsecutiveWrong >= 3
}

// Correct returns the state after a correct answer: totals updated,
// attempt counters cleared, and the cursor for the current phase
// advanced. Which cursor moves depends on where the question came from.
func (s State) Correct() State {
	next := s
	next.TotalCorrect++
	next.ConsecutiveWrong = 0
	next.Attempts = 0

	switch next.ConceptPhase {
	case ConceptGuided:
		next.GuidedIndex++
	case ConceptIndependent:
		next.IndependentIndex++
	case ConceptCheck:
		next.ConceptPhase = ConceptCompleted
	default:
		if next.LessonPhase == PhaseChapterReview {
			next.ReviewIndex++
		}
	}
	return next
}

// Wrong returns the state after an incorrect answer. No cursor moves;
// the question will be asked again.
func (s State) Wrong() State {
	next := s
	next.TotalWrong++
	next.Attempts++
	next.ConsecutiveWrong++
	return next
}

// HintIntensity escalates with repeated wrong attempts at the same
// question.
type HintIntensity string

const (
	HintGentle      HintIntensity = "gentle"
	HintClearer     HintIntensity = "clearer"
	HintVeryHelpful HintIntensity = "very helpful"
)

// IntensityFor maps an attempt count to the hint intensity used when
// phrasing the next hint.
func IntensityFor(attempts int) HintIntensity {
	switch {
	case attempts <= 1:
		return HintGentle
	case attempts <= 2:
		return HintClearer
	default:
		return HintVeryHelpful
	}
}
