package console

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learno/internal/router"
	"github.com/abhisek/learno/internal/tutor"
)

func testSummary() *tutor.Summary {
	return &tutor.Summary{
		Message:           "You completed the whole lesson! 🎉",
		ConceptsCompleted: 5,
		TotalCorrect:      21,
		TotalWrong:        2,
		IsComplete:        true,
	}
}

func TestSummaryViewShowsResults(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, testSummary())

	view := s.View(80, 24)
	if !strings.Contains(view, "You completed the whole lesson! 🎉") {
		t.Error("view should show the goodbye message")
	}
	if !strings.Contains(view, "Correct: 21") {
		t.Error("view should show the correct count")
	}
	if !strings.Contains(view, "Concepts 5/5") {
		t.Error("view should show concept completion")
	}
	if !strings.Contains(view, "Whole chapter finished!") {
		t.Error("a complete lesson should celebrate")
	}
}

func TestSummaryPartialLesson(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, &tutor.Summary{
		Message:           "Great effort today! 🌟",
		ConceptsCompleted: 2,
		TotalCorrect:      6,
		TotalWrong:        3,
	})

	view := s.View(80, 24)
	if !strings.Contains(view, "Concepts 2/5") {
		t.Error("view should show partial completion")
	}
	if strings.Contains(view, "Whole chapter finished!") {
		t.Error("a partial lesson must not celebrate completion")
	}
}

func TestSummaryButtonsToggle(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, testSummary())

	if !s.buttons[0].Active || s.buttons[1].Active {
		t.Fatal("NEW LESSON should start active")
	}

	s.Update(specialKey(tea.KeyRight))
	if s.buttons[0].Active || !s.buttons[1].Active {
		t.Fatal("right should move to ALL DONE")
	}

	s.Update(specialKey(tea.KeyLeft))
	if !s.buttons[0].Active {
		t.Fatal("left should move back to NEW LESSON")
	}
}

func TestSummaryNewLessonPopsToWelcome(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, testSummary())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("NEW LESSON should pop back to the welcome screen")
	}
}

func TestSummaryAllDoneQuits(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, testSummary())

	s.Update(specialKey(tea.KeyRight))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected the quit command")
	}
}

func TestSummaryEscGoesBack(t *testing.T) {
	opts, _ := testOptions()
	s := newSummaryScreen(opts, testSummary())

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop back to the welcome screen")
	}
}
