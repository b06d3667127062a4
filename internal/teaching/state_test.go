package teaching

import "testing"

func TestCorrect_AdvancesCursorForCurrentPhase(t *testing.T) {
	tests := []struct {
		name  string
		state State
		check func(t *testing.T, next State)
	}{
		{
			name:  "guided practice moves the guided cursor",
			state: State{LessonPhase: PhaseTeaching, ConceptPhase: ConceptGuided, GuidedIndex: 1},
			check: func(t *testing.T, next State) {
				if next.GuidedIndex != 2 {
					t.Errorf("GuidedIndex = %d, want 2", next.GuidedIndex)
				}
			},
		},
		{
			name:  "independent practice moves the independent cursor",
			state: State{LessonPhase: PhaseTeaching, ConceptPhase: ConceptIndependent},
			check: func(t *testing.T, next State) {
				if next.IndependentIndex != 1 {
					t.Errorf("IndependentIndex = %d, want 1", next.IndependentIndex)
				}
			},
		},
		{
			name:  "concept check completes the concept",
			state: State{LessonPhase: PhaseTeaching, ConceptPhase: ConceptCheck},
			check: func(t *testing.T, next State) {
				if next.ConceptPhase != ConceptCompleted {
					t.Errorf("ConceptPhase = %q, want %q", next.ConceptPhase, ConceptCompleted)
				}
			},
		},
		{
			name:  "chapter review moves the review cursor",
			state: State{LessonPhase: PhaseChapterReview, ConceptPhase: ConceptIntroduction, ReviewIndex: 2},
			check: func(t *testing.T, next State) {
				if next.ReviewIndex != 3 {
					t.Errorf("ReviewIndex = %d, want 3", next.ReviewIndex)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := tc.state.Correct()
			if next.TotalCorrect != tc.state.TotalCorrect+1 {
				t.Errorf("TotalCorrect = %d, want %d", next.TotalCorrect, tc.state.TotalCorrect+1)
			}
			if next.Attempts != 0 || next.ConsecutiveWrong != 0 {
				t.Errorf("attempt counters not reset: attempts=%d consecutive=%d", next.Attempts, next.ConsecutiveWrong)
			}
			tc.check(t, next)
		})
	}
}

func TestWrong_CountsWithoutAdvancing(t *testing.T) {
	s := State{
		LessonPhase:  PhaseTeaching,
		ConceptPhase: ConceptGuided,
		GuidedIndex:  1,
	}

	for i := 1; i <= 3; i++ {
		s = s.Wrong()
		if s.Attempts != i {
			t.Fatalf("after %d wrong answers Attempts = %d", i, s.Attempts)
		}
		if s.GuidedIndex != 1 {
			t.Fatalf("wrong answer moved the guided cursor to %d", s.GuidedIndex)
		}
		if s.ConceptPhase != ConceptGuided {
			t.Fatalf("wrong answer changed concept phase to %q", s.ConceptPhase)
		}
	}

	if s.TotalWrong != 3 {
		t.Errorf("TotalWrong = %d, want 3", s.TotalWrong)
	}
	if !s.NeedsExtraHelp() {
		t.Error("three consecutive wrong answers must flag extra help")
	}

	// Any correct answer clears the streak and the flag.
	s = s.Correct()
	if s.NeedsExtraHelp() {
		t.Error("extra help must clear after a correct answer")
	}
}

func TestNeedsExtraHelp_DerivedFromStreak(t *testing.T) {
	s := State{}
	if s.NeedsExtraHelp() {
		t.Error("fresh state must not need extra help")
	}
	s.ConsecutiveWrong = 2
	if s.NeedsExtraHelp() {
		t.Error("two wrong answers are not yet a struggle")
	}
	s.ConsecutiveWrong = 3
	if !s.NeedsExtraHelp() {
		t.Error("three wrong answers must need extra help")
	}
}

func TestIntensityFor(t *testing.T) {
	tests := []struct {
		attempts int
		want     HintIntensity
	}{
		{0, HintGentle},
		{1, HintGentle},
		{2, HintClearer},
		{3, HintVeryHelpful},
		{7, HintVeryHelpful},
	}

	for _, tc := range tests {
		if got := IntensityFor(tc.attempts); got != tc.want {
			t.Errorf("IntensityFor(%d) = %q, want %q", tc.attempts, got, tc.want)
		}
	}
}
