package teaching

import (
	"testing"

	"github.com/abhisek/learno/internal/content"
)

func testChapter() *content.Chapter {
	concept := func(id string) content.Concept {
		return content.Concept{
			ID:                id,
			Name:              id,
			IntroScript:       "intro",
			ExplanationScript: "explain",
			VisualDescription: "a picture for " + id,
			VisualScript:      "look",
			Guided: []content.Question{
				{Text: "g1?", Answer: "1", Hint: "h1"},
				{Text: "g2?", Answer: "2", Hint: "h2"},
			},
			Independent: []content.Question{
				{Text: "i1?", Answer: "3", Hint: "h3"},
			},
			Mastery: content.Question{Text: "m?", Answer: "4"},
		}
	}
	return &content.Chapter{
		ID:       "test",
		Title:    "Test Chapter",
		Concepts: []content.Concept{concept("a"), concept("b")},
		ReviewQuestions: []content.Question{
			{Text: "r1?", Answer: "5", Hint: "rh1"},
			{Text: "r2?", Answer: "6", Hint: "rh2"},
		},
		WelcomeScript:    "welcome",
		CompletionScript: "done",
	}
}

// advanceAndCommit mimics the orchestrator: compute the step, commit its
// next state, and answer correctly when a question was asked.
func advanceAndCommit(t *testing.T, st State, ch *content.Chapter) (Step, State) {
	t.Helper()
	step, err := Advance(st, ch)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	next := step.Next
	if step.Question != nil {
		if !EvaluateAnswer(step.Question.Answer, next.Expectation) {
			t.Fatalf("expected answer %q rejected for step %q", step.Question.Answer, step.Kind)
		}
		next = next.Correct()
	}
	return step, next
}

func TestAdvance_FullChapterCycle(t *testing.T) {
	ch := testChapter()
	st := NewState()

	perConcept := []StepKind{
		StepIntroduction,
		StepExplanation,
		StepVisual,
		StepGuidedQuestion, StepGuidedQuestion,
		StepIndependentQuestion,
		StepMasteryCheck,
	}
	var want []StepKind
	for range ch.Concepts {
		want = append(want, perConcept...)
	}
	want = append(want, StepReviewQuestion, StepReviewQuestion, StepCelebration)

	var got []StepKind
	for i := 0; i < len(want); i++ {
		var step Step
		step, st = advanceAndCommit(t, st, ch)
		got = append(got, step.Kind)
	}

	if len(got) != len(want) {
		t.Fatalf("walked %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}

	if st.LessonPhase != PhaseCompleted {
		t.Errorf("final lesson phase = %q, want %q", st.LessonPhase, PhaseCompleted)
	}
	// Every question in the chapter was answered correctly exactly once.
	wantCorrect := len(ch.Concepts)*4 + len(ch.ReviewQuestions)
	if st.TotalCorrect != wantCorrect {
		t.Errorf("TotalCorrect = %d, want %d", st.TotalCorrect, wantCorrect)
	}
	if st.TotalWrong != 0 {
		t.Errorf("TotalWrong = %d, want 0", st.TotalWrong)
	}
}

func TestAdvance_CompletedIsTerminal(t *testing.T) {
	ch := testChapter()
	st := State{LessonPhase: PhaseCompleted, ConceptIndex: len(ch.Concepts)}

	for i := 0; i < 3; i++ {
		step, err := Advance(st, ch)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if step.Kind != StepCelebration || !step.LessonComplete {
			t.Fatalf("terminal step = %q (complete=%v), want celebration", step.Kind, step.LessonComplete)
		}
		if step.Next != st {
			t.Fatalf("terminal advance changed state: %+v", step.Next)
		}
		st = step.Next
	}
}

func TestAdvance_RepeatedCallsKeepPendingQuestion(t *testing.T) {
	ch := testChapter()
	st := NewState()

	// Walk to the first guided question.
	for {
		step, err := Advance(st, ch)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		st = step.Next
		if step.Kind == StepGuidedQuestion {
			break
		}
	}

	// Re-rendering without answering must not move the cursor or change
	// the pending question.
	for i := 0; i < 3; i++ {
		step, err := Advance(st, ch)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if step.Kind != StepGuidedQuestion {
			t.Fatalf("repeat %d rendered %q, want guided question", i, step.Kind)
		}
		if step.Question.Text != "g1?" {
			t.Fatalf("repeat %d rendered question %q, want g1?", i, step.Question.Text)
		}
		if step.Next.GuidedIndex != st.GuidedIndex {
			t.Fatalf("repeat %d moved guided cursor to %d", i, step.Next.GuidedIndex)
		}
		st = step.Next
	}
}

func TestAdvance_SkipsExhaustedPhases(t *testing.T) {
	ch := &content.Chapter{
		ID: "sparse",
		Concepts: []content.Concept{{
			ID:      "only",
			Name:    "only",
			Mastery: content.Question{Text: "m?", Answer: "1"},
		}},
	}

	// Guided and independent are both empty, so a single advance from
	// guided practice must land on the mastery check.
	st := State{LessonPhase: PhaseTeaching, ConceptPhase: ConceptGuided}
	step, err := Advance(st, ch)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if step.Kind != StepMasteryCheck {
		t.Fatalf("step = %q, want mastery check", step.Kind)
	}
	if step.Next.Expectation == nil || step.Next.Expectation.Hint == "" {
		t.Error("mastery check must stash an expectation with a fallback hint")
	}
}

func TestAdvance_EmptyChapterCelebrates(t *testing.T) {
	ch := &content.Chapter{ID: "empty"}
	step, err := Advance(NewState(), ch)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if step.Kind != StepCelebration || !step.LessonComplete {
		t.Fatalf("step = %q (complete=%v), want immediate celebration", step.Kind, step.LessonComplete)
	}
	if step.Next.LessonPhase != PhaseCompleted {
		t.Errorf("next phase = %q, want completed", step.Next.LessonPhase)
	}
}

func TestAdvance_EnteringReviewResetsCursor(t *testing.T) {
	ch := testChapter()
	st := State{
		LessonPhase:  PhaseTeaching,
		ConceptIndex: len(ch.Concepts),
		ReviewIndex:  3, // stale value from a previous concept pass
	}

	step, err := Advance(st, ch)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if step.Kind != StepReviewQuestion {
		t.Fatalf("step = %q, want review question", step.Kind)
	}
	if step.QuestionNumber != 1 {
		t.Errorf("QuestionNumber = %d, want 1", step.QuestionNumber)
	}
	if step.Next.LessonPhase != PhaseChapterReview {
		t.Errorf("next phase = %q, want chapter review", step.Next.LessonPhase)
	}
}

func TestAsksQuestion(t *testing.T) {
	asking := []StepKind{StepGuidedQuestion, StepIndependentQuestion, StepMasteryCheck, StepReviewQuestion}
	for _, k := range asking {
		if !k.AsksQuestion() {
			t.Errorf("%q.AsksQuestion() = false, want true", k)
		}
	}

	telling := []StepKind{StepWelcome, StepIntroduction, StepExplanation, StepVisual, StepCelebration, StepHint, StepSilenceHint}
	for _, k := range telling {
		if k.AsksQuestion() {
			t.Errorf("%q.AsksQuestion() = true, want false", k)
		}
	}
}
