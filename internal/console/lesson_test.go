package console

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learno/internal/router"
)

// startLesson builds a lesson screen and plays the opening turn.
func startLesson(t *testing.T, opts Options) *lessonScreen {
	t.Helper()

	ls := newLessonScreen(opts, countingRequest())
	msg := ls.start()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("message = %T, want startedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("start lesson: %v", started.Err)
	}
	ls.Update(started)
	return ls
}

// pressEnter sends enter and, if the screen issued a tutor call,
// delivers its reply.
func pressEnter(t *testing.T, ls *lessonScreen) {
	t.Helper()

	_, cmd := ls.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		return
	}
	ls.Update(cmd())
}

// reachQuestion presses enter until a question is pending.
func reachQuestion(t *testing.T, ls *lessonScreen) {
	t.Helper()

	for i := 0; i < 20 && !ls.pending; i++ {
		pressEnter(t, ls)
	}
	if !ls.pending {
		t.Fatal("never reached a question")
	}
}

// answer types a reply and submits it.
func answer(t *testing.T, ls *lessonScreen, text string) {
	t.Helper()

	ls.input.Model.SetValue(text)
	pressEnter(t, ls)
}

func TestLessonOpensWithWelcome(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	if ls.sessionID == "" {
		t.Error("expected a session id after start")
	}
	if len(ls.transcript) != 1 {
		t.Fatalf("transcript entries = %d, want 1", len(ls.transcript))
	}
	turn := ls.transcript[0].turn
	if turn == nil || turn.MessageType != "welcome" {
		t.Fatalf("first turn = %+v, want a welcome", turn)
	}
	if ls.pending {
		t.Error("welcome must not wait for an answer")
	}
	if ls.waiting {
		t.Error("screen should be idle after the opening turn")
	}

	view := ls.View(80, 24)
	if !strings.Contains(view, "say:welcome") {
		t.Error("view should show the welcome text")
	}
	if !strings.Contains(view, "Press Enter to keep going") {
		t.Error("view should prompt to continue")
	}
}

func TestLessonWalksTeachingSteps(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	wantKinds := []string{"concept_introduction", "explanation", "visual_example", "guided_practice"}
	for _, want := range wantKinds {
		pressEnter(t, ls)
		turn := ls.lastTurn()
		if turn.MessageType != want {
			t.Fatalf("turn = %q, want %q", turn.MessageType, want)
		}
	}

	if !ls.pending {
		t.Error("guided practice should wait for an answer")
	}

	view := ls.View(80, 24)
	if !strings.Contains(view, "Answer:") {
		t.Error("view should show the answer prompt at a question")
	}
}

func TestLessonCorrectAnswerEarnsPraise(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)
	reachQuestion(t, ls)

	answer(t, ls, "2")

	turn := ls.lastTurn()
	if turn.Progress.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", turn.Progress.TotalCorrect)
	}
	if !strings.HasPrefix(turn.Text, "say:praise") {
		t.Errorf("turn text = %q, want praise first", turn.Text)
	}

	// The learner's words stay in the conversation.
	var spoke bool
	for _, e := range ls.transcript {
		if e.learner == "2" {
			spoke = true
		}
	}
	if !spoke {
		t.Error("transcript should keep the learner's answer")
	}
	if ls.input.Value() != "" {
		t.Error("input should be cleared after the reply arrives")
	}
}

func TestLessonWrongAnswerGetsHint(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)
	reachQuestion(t, ls)

	answer(t, ls, "banana")

	turn := ls.lastTurn()
	if turn.MessageType != "hint" {
		t.Fatalf("turn = %q, want hint", turn.MessageType)
	}
	if turn.Progress.TotalWrong != 1 {
		t.Errorf("total wrong = %d, want 1", turn.Progress.TotalWrong)
	}
	if !ls.pending {
		t.Error("the question should still wait for an answer after a hint")
	}
}

func TestLessonEmptyAnswerIsIgnored(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)
	reachQuestion(t, ls)

	before := len(ls.transcript)
	ls.input.Model.SetValue("   ")
	_, cmd := ls.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blank answers should not reach the tutor")
	}
	if len(ls.transcript) != before {
		t.Error("blank answers should not join the transcript")
	}
}

func TestLessonQuitConfirm(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	ls.Update(specialKey(tea.KeyEscape))
	if !ls.quitConfirm {
		t.Fatal("esc should ask for confirmation")
	}
	view := ls.View(80, 24)
	if !strings.Contains(view, "End the lesson early?") {
		t.Error("view should show the quit dialog")
	}

	ls.Update(keyPress('n'))
	if ls.quitConfirm {
		t.Fatal("n should keep the lesson going")
	}

	ls.Update(specialKey(tea.KeyEscape))
	_, cmd := ls.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should end the lesson")
	}

	msg := cmd()
	sum, ok := msg.(summaryMsg)
	if !ok {
		t.Fatalf("message = %T, want summaryMsg", msg)
	}
	if sum.Err != nil {
		t.Fatalf("end lesson: %v", sum.Err)
	}
	if sum.Summary.Message != "Great effort today! 🌟" {
		t.Errorf("summary message = %q", sum.Summary.Message)
	}

	_, cmd = ls.Update(msg)
	if cmd == nil {
		t.Fatal("expected navigation to the summary screen")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("navigation = %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := replace.Screen.(*summaryScreen); !ok {
		t.Fatalf("replacement screen = %T, want summaryScreen", replace.Screen)
	}
}

func TestLessonSilenceNudgesOncePerQuestion(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)
	reachQuestion(t, ls)

	// Quiet long enough: the tick triggers one nudge.
	ls.lastActive = time.Now().Add(-11 * time.Second)
	_, cmd := ls.Update(silenceTickMsg(time.Now()))
	if cmd == nil || !ls.nudged || !ls.waiting {
		t.Fatal("expected a silence nudge after the threshold")
	}

	// Deliver the tutor's nudge directly.
	ls.Update(ls.nudge()())

	turn := ls.lastTurn()
	if turn.MessageType != "silence_hint" {
		t.Fatalf("turn = %q, want silence_hint", turn.MessageType)
	}
	if !ls.pending {
		t.Error("the question should survive a silence nudge")
	}
	if !ls.nudged {
		t.Error("one nudge per question: the flag must stay set")
	}

	// Still quiet: no second nudge.
	ls.lastActive = time.Now().Add(-time.Minute)
	_, _ = ls.Update(silenceTickMsg(time.Now()))
	if ls.waiting {
		t.Error("a second nudge fired for the same question")
	}
}

func TestLessonTickIdlesOutsideQuestions(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	ls.lastActive = time.Now().Add(-time.Minute)
	_, cmd := ls.Update(silenceTickMsg(time.Now()))
	if ls.waiting || ls.nudged {
		t.Error("no nudge should fire while just reading")
	}
	if cmd == nil {
		t.Error("the silence watch should keep ticking")
	}
}

func TestLessonTutorErrorPausesAndRecovers(t *testing.T) {
	opts, speaker := testOptions()
	ls := startLesson(t, opts)

	speaker.fail = true
	pressEnter(t, ls)
	if ls.errMsg == "" {
		t.Fatal("expected an error message when phrasing fails")
	}
	if ls.fatal {
		t.Error("a mid-lesson error should not end the screen")
	}

	// Any key clears the error, then the retry succeeds.
	speaker.fail = false
	ls.Update(keyPress(' '))
	if ls.errMsg != "" {
		t.Fatal("a key press should clear the error")
	}
	pressEnter(t, ls)
	if ls.lastTurn().MessageType != "concept_introduction" {
		t.Errorf("retry rendered %q, want concept_introduction", ls.lastTurn().MessageType)
	}
}

func TestLessonStartFailureGoesBack(t *testing.T) {
	opts, speaker := testOptions()
	speaker.fail = true

	ls := newLessonScreen(opts, countingRequest())
	ls.Update(ls.start()().(startedMsg))

	if ls.errMsg == "" || !ls.fatal {
		t.Fatal("a failed start should be fatal")
	}

	_, cmd := ls.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("a fatal error should pop back to the welcome screen")
	}
}

func TestLessonStatusLine(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	status := ls.Status()
	if !strings.Contains(status, "★ 0") || !strings.Contains(status, "Concept 1/5") {
		t.Errorf("status = %q", status)
	}

	reachQuestion(t, ls)
	answer(t, ls, "2")
	if !strings.Contains(ls.Status(), "★ 1") {
		t.Errorf("status after a correct answer = %q", ls.Status())
	}
}

func TestLessonKeyHintsFollowState(t *testing.T) {
	opts, _ := testOptions()
	ls := startLesson(t, opts)

	hints := ls.KeyHints()
	if hints[0].Description != "Continue" {
		t.Errorf("idle hint = %q, want Continue", hints[0].Description)
	}

	reachQuestion(t, ls)
	hints = ls.KeyHints()
	if hints[0].Description != "Answer" {
		t.Errorf("question hint = %q, want Answer", hints[0].Description)
	}

	ls.Update(specialKey(tea.KeyEscape))
	hints = ls.KeyHints()
	if hints[0].Key != "Y" {
		t.Errorf("quit-confirm hint = %q, want Y", hints[0].Key)
	}
}
