package console

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learno/internal/router"
)

func TestWelcomeListsEveryLesson(t *testing.T) {
	opts, _ := testOptions()
	s := newWelcomeScreen(opts)

	topics := opts.Catalog.Topics()
	if len(s.menu.Items) != len(topics) {
		t.Fatalf("menu items = %d, want %d", len(s.menu.Items), len(topics))
	}
	for i, topic := range topics {
		want := strings.ToUpper(topic)
		if s.menu.Items[i].Label != want {
			t.Errorf("item %d = %q, want %q", i, s.menu.Items[i].Label, want)
		}
	}
}

func TestWelcomeFocusMovesBetweenNameAndMenu(t *testing.T) {
	opts, _ := testOptions()
	s := newWelcomeScreen(opts)

	if s.focusMenu {
		t.Fatal("name field should have focus first")
	}

	s.Update(specialKey(tea.KeyEnter))
	if !s.focusMenu {
		t.Error("enter should move focus to the lesson menu")
	}

	s.Update(specialKey(tea.KeyTab))
	if s.focusMenu {
		t.Error("tab should move focus back to the name field")
	}
	if !s.name.Focused() {
		t.Error("name input should regain keyboard focus")
	}
}

func TestWelcomeStartsChosenLesson(t *testing.T) {
	opts, _ := testOptions()
	s := newWelcomeScreen(opts)
	s.name.Model.SetValue("Mina")

	// Move to the menu and pick the first lesson.
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("message = %T, want PushScreenMsg", msg)
	}
	ls, ok := push.Screen.(*lessonScreen)
	if !ok {
		t.Fatalf("pushed screen = %T, want lessonScreen", push.Screen)
	}

	if ls.req.StudentName != "Mina" {
		t.Errorf("student name = %q, want Mina", ls.req.StudentName)
	}
	if ls.req.StudentID != "console" {
		t.Errorf("student id = %q, want console", ls.req.StudentID)
	}
	if ls.req.Grade != 2 || ls.req.Subject != "math" {
		t.Errorf("grade/subject = %d/%q, want 2/math", ls.req.Grade, ls.req.Subject)
	}
	if ls.req.Lesson != opts.Catalog.Topics()[0] {
		t.Errorf("lesson = %q, want %q", ls.req.Lesson, opts.Catalog.Topics()[0])
	}
}

func TestWelcomeDefaultsStudentName(t *testing.T) {
	opts, _ := testOptions()
	s := newWelcomeScreen(opts)

	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	push := cmd().(router.PushScreenMsg)
	ls := push.Screen.(*lessonScreen)
	if ls.req.StudentName != "Student" {
		t.Errorf("student name = %q, want the Student fallback", ls.req.StudentName)
	}
}

func TestWelcomeViewShowsPrompts(t *testing.T) {
	opts, _ := testOptions()
	s := newWelcomeScreen(opts)

	view := s.View(80, 24)
	if !strings.Contains(view, "Welcome to Learno!") {
		t.Error("view should greet the learner")
	}
	if !strings.Contains(view, "Pick a lesson") {
		t.Error("view should ask to pick a lesson")
	}
	if !strings.Contains(view, "COUNTING") {
		t.Error("view should list the counting lesson")
	}
}
