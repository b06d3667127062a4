package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/session"
)

func TestTeachingStepSequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	want := []struct {
		kind         string
		lessonPhase  string
		conceptPhase string
	}{
		{"concept_introduction", "teaching", "explanation"},
		{"explanation", "teaching", "visual_example"},
		{"visual_example", "teaching", "guided_practice"},
		{"guided_practice", "teaching", "guided_practice"},
	}

	for i, w := range want {
		turn, err := f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
		if turn.MessageType != w.kind {
			t.Errorf("step %d = %q, want %q", i, turn.MessageType, w.kind)
		}
		if turn.Progress.LessonPhase != w.lessonPhase || turn.Progress.ConceptPhase != w.conceptPhase {
			t.Errorf("step %d progress = %s/%s, want %s/%s",
				i, turn.Progress.LessonPhase, turn.Progress.ConceptPhase, w.lessonPhase, w.conceptPhase)
		}
		if turn.IsComplete {
			t.Errorf("step %d should not complete the lesson", i)
		}
	}
}

func TestVisualStepDrawsConceptDescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	// Even a marker in the spoken turn must not override the authored
	// visual description.
	f.speaker.reply("visual", "Look at this! [GENERATE_IMAGE: a red balloon]")

	var turn *Turn
	var err error
	for i := 0; i < 3; i++ {
		turn, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "visual_example" {
		t.Fatalf("step = %q, want visual_example", turn.MessageType)
	}

	if turn.Text != "Look at this!" {
		t.Errorf("text = %q, marker should be stripped", turn.Text)
	}
	if turn.ImageURL != "https://img.test/pic.png" {
		t.Errorf("image url = %q", turn.ImageURL)
	}

	ch := content.NewCatalog().DefaultChapter()
	last := f.illustrator.calls[len(f.illustrator.calls)-1]
	if last != ch.Concept(0).VisualDescription {
		t.Errorf("illustrated %q, want the concept's visual description", last)
	}
}

func TestQuestionMarkerOverridesAuthoredPrompt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	f.speaker.reply("guided", "Count with me! [GENERATE_IMAGE: three shiny apples]")

	var turn *Turn
	var err error
	for i := 0; i < 4; i++ {
		turn, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "guided_practice" {
		t.Fatalf("step = %q, want guided_practice", turn.MessageType)
	}
	if turn.Text != "Count with me!" {
		t.Errorf("text = %q", turn.Text)
	}

	last := f.illustrator.calls[len(f.illustrator.calls)-1]
	if last != "three shiny apples" {
		t.Errorf("illustrated %q, want the marker description", last)
	}
}

func TestQuestionFallsBackToAuthoredPrompt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	var turn *Turn
	var err error
	for i := 0; i < 4; i++ {
		turn, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "guided_practice" {
		t.Fatalf("step = %q, want guided_practice", turn.MessageType)
	}

	ch := content.NewCatalog().DefaultChapter()
	last := f.illustrator.calls[len(f.illustrator.calls)-1]
	if last != ch.Concept(0).Guided[0].ImagePrompt {
		t.Errorf("illustrated %q, want the question's authored prompt", last)
	}
}

func TestPendingQuestionRerenders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	var first *Turn
	var err error
	for i := 0; i < 4; i++ {
		first, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}

	// Continuing without answering asks the same question again.
	again, err := f.tutor.ContinueTeaching(ctx, sid)
	if err != nil {
		t.Fatalf("re-render: %v", err)
	}
	if again.MessageType != first.MessageType {
		t.Errorf("re-rendered kind = %q, want %q", again.MessageType, first.MessageType)
	}
	if again.Progress != first.Progress {
		t.Errorf("progress moved: %+v -> %+v", first.Progress, again.Progress)
	}

	calls := f.speaker.calls
	q1, q2 := calls[len(calls)-2], calls[len(calls)-1]
	if q1.prompt != q2.prompt {
		t.Error("re-rendered question should reuse the same prompt material")
	}
}

func TestPraisePrefixesNextStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	for i := 0; i < 4; i++ {
		if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}

	turn, err := f.tutor.SubmitAnswer(ctx, sid, "two")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !strings.HasPrefix(turn.Text, "spoken:praise\n\n") {
		t.Errorf("text = %q, want praise prefix", turn.Text)
	}
	if turn.MessageType != "guided_practice" {
		t.Errorf("message type = %q, want the second guided question", turn.MessageType)
	}
	if turn.Progress.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", turn.Progress.TotalCorrect)
	}

	// The praise prompt carries the concept's own encouragement phrases.
	var praise speakerCall
	for _, c := range f.speaker.calls {
		if c.purpose == "praise" {
			praise = c
		}
	}
	ch := content.NewCatalog().DefaultChapter()
	if !strings.Contains(praise.prompt, ch.Concept(0).Encouragements[0]) {
		t.Error("praise prompt should carry the concept's encouragement phrases")
	}

	// The illustration, if any, belongs to the next question, never to
	// the praise itself.
	last := f.illustrator.calls[len(f.illustrator.calls)-1]
	if last != ch.Concept(0).Guided[1].ImagePrompt {
		t.Errorf("illustrated %q, want the next question's prompt", last)
	}
}

func TestPraiseMarkerIsStrippedNotDrawn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	f.speaker.reply("praise", "Amazing! [GENERATE_IMAGE: fireworks] Keep going!")

	for i := 0; i < 4; i++ {
		if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	turn, err := f.tutor.SubmitAnswer(ctx, sid, "2")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if strings.Contains(turn.Text, "GENERATE_IMAGE") {
		t.Errorf("text = %q, marker should be stripped", turn.Text)
	}
	for _, desc := range f.illustrator.calls {
		if desc == "fireworks" {
			t.Error("praise markers must not be drawn")
		}
	}
}

func TestHintEscalation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	for i := 0; i < 4; i++ {
		if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}

	wantIntensity := []string{"gentle", "clearer", "very helpful"}
	for i, intensity := range wantIntensity {
		turn, err := f.tutor.SubmitAnswer(ctx, sid, "banana")
		if err != nil {
			t.Fatalf("wrong answer %d: %v", i, err)
		}
		if turn.MessageType != "hint" {
			t.Fatalf("turn %d = %q, want hint", i, turn.MessageType)
		}
		if turn.Progress.ConceptPhase != "guided_practice" {
			t.Errorf("turn %d: cursor moved to %q", i, turn.Progress.ConceptPhase)
		}
		if turn.Progress.TotalWrong != i+1 {
			t.Errorf("turn %d: total wrong = %d, want %d", i, turn.Progress.TotalWrong, i+1)
		}

		prompt := f.speaker.lastCall().prompt
		if !strings.Contains(prompt, "INTENSITY: "+intensity) {
			t.Errorf("hint %d prompt intensity: want %q in:\n%s", i, intensity, prompt)
		}
		if i < 2 && strings.Contains(prompt, "EXTRA HELP MODE") {
			t.Errorf("hint %d escalated to extra help too early", i)
		}
		if i == 2 && !strings.Contains(prompt, "EXTRA HELP MODE") {
			t.Error("third consecutive miss should trigger extra help mode")
		}
	}

	hints := f.journal.hints
	if len(hints) != 3 {
		t.Fatalf("journaled hints = %d, want 3", len(hints))
	}
	for i, intensity := range wantIntensity {
		if hints[i].Intensity != intensity {
			t.Errorf("hint %d intensity = %q, want %q", i, hints[i].Intensity, intensity)
		}
		if hints[i].Attempts != i+1 {
			t.Errorf("hint %d attempts = %d, want %d", i, hints[i].Attempts, i+1)
		}
	}
	if hints[0].ExtraHelp || hints[1].ExtraHelp || !hints[2].ExtraHelp {
		t.Error("only the third hint should be flagged extra help")
	}

	// A correct answer clears the streak.
	turn, err := f.tutor.SubmitAnswer(ctx, sid, "2")
	if err != nil {
		t.Fatalf("correct answer: %v", err)
	}
	if turn.Progress.TotalCorrect != 1 || turn.Progress.TotalWrong != 3 {
		t.Errorf("totals = %d/%d, want 1/3", turn.Progress.TotalCorrect, turn.Progress.TotalWrong)
	}
}

func TestHintPromptCarriesAnswerContext(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	for i := 0; i < 4; i++ {
		if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if _, err := f.tutor.SubmitAnswer(ctx, sid, "seventeen"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ch := content.NewCatalog().DefaultChapter()
	q := ch.Concept(0).Guided[0]
	prompt := f.speaker.lastCall().prompt
	if !strings.Contains(prompt, "seventeen") {
		t.Error("hint prompt should quote the child's answer")
	}
	if !strings.Contains(prompt, q.Answer) {
		t.Error("hint prompt should carry the expected answer")
	}
	if !strings.Contains(prompt, q.Hint) {
		t.Error("hint prompt should carry the authored hint")
	}

	ans := f.journal.answers[len(f.journal.answers)-1]
	if ans.Correct {
		t.Error("answer event should record the miss")
	}
	if ans.ConceptID != ch.Concept(0).ID || ans.QuestionText != q.Text {
		t.Errorf("answer context = %q / %q", ans.ConceptID, ans.QuestionText)
	}
}

func TestSilenceNudge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	// Before any question is pending the nudge uses the stock line.
	turn, err := f.tutor.NotifySilence(ctx, sid, 15)
	if err != nil {
		t.Fatalf("silence: %v", err)
	}
	if turn.MessageType != "silence_hint" {
		t.Errorf("message type = %q, want silence_hint", turn.MessageType)
	}
	prompt := f.speaker.lastCall().prompt
	if !strings.Contains(prompt, defaultSilenceHint) {
		t.Error("nudge before a question should fall back to the stock hint")
	}

	// Reach the first guided question, then go quiet.
	for i := 0; i < 4; i++ {
		if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	before, err := f.tutor.ContinueTeaching(ctx, sid)
	if err != nil {
		t.Fatalf("re-render: %v", err)
	}

	turn, err = f.tutor.NotifySilence(ctx, sid, 20)
	if err != nil {
		t.Fatalf("silence at question: %v", err)
	}

	ch := content.NewCatalog().DefaultChapter()
	prompt = f.speaker.lastCall().prompt
	if !strings.Contains(prompt, ch.Concept(0).Guided[0].Hint) {
		t.Error("nudge at a question should reuse its authored hint")
	}

	// Nothing moved: no answer counted, question still pending.
	if turn.Progress != before.Progress {
		t.Errorf("silence changed progress: %+v -> %+v", before.Progress, turn.Progress)
	}
	if len(f.journal.answers) != 0 {
		t.Errorf("journaled answers = %d, want 0", len(f.journal.answers))
	}

	hints := f.journal.hints
	if len(hints) != 2 {
		t.Fatalf("journaled hints = %d, want 2", len(hints))
	}
	for i, h := range hints {
		if !h.Silence {
			t.Errorf("hint %d not flagged as silence", i)
		}
	}
	if hints[1].QuestionText != ch.Concept(0).Guided[0].Text {
		t.Errorf("silence hint question = %q", hints[1].QuestionText)
	}
}

func TestIllustratorFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.illustrator.err = errors.New("image service down")
	ctx := context.Background()
	sid := startCounting(t, f)

	var turn *Turn
	var err error
	for i := 0; i < 3; i++ {
		turn, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "visual_example" {
		t.Fatalf("step = %q, want visual_example", turn.MessageType)
	}
	if turn.ImageURL != "" {
		t.Errorf("image url = %q, want empty on failure", turn.ImageURL)
	}

	img := f.journal.images[len(f.journal.images)-1]
	if img.Success {
		t.Error("image event should record the failure")
	}
	if img.ErrorMessage == "" {
		t.Error("image event should carry the error message")
	}
}

func TestWithoutIllustrator(t *testing.T) {
	sessions := session.NewStore(30 * time.Minute)
	speaker := &scriptedSpeaker{}
	tut := New(sessions, content.NewCatalog(), speaker, logger.Nop())
	ctx := context.Background()

	turn, err := tut.StartLesson(ctx, StartRequest{Grade: 2, Subject: "math", Lesson: "counting"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sid := turn.SessionID

	for i := 0; i < 3; i++ {
		turn, err = tut.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "visual_example" {
		t.Fatalf("step = %q, want visual_example", turn.MessageType)
	}
	if turn.ImageURL != "" {
		t.Errorf("image url = %q, want empty without an illustrator", turn.ImageURL)
	}
}

func TestPhrasingFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
		t.Fatalf("continue: %v", err)
	}
	before := f.tutor.state(sid)

	f.speaker.failOn = "explanation"
	_, err := f.tutor.ContinueTeaching(ctx, sid)
	if !errors.Is(err, ErrAIService) {
		t.Fatalf("err = %v, want ErrAIService", err)
	}

	f.speaker.failOn = ""
	after := f.tutor.state(sid)
	if before != after {
		t.Errorf("state changed across a failed render: %+v -> %+v", before, after)
	}

	// The next call picks up exactly where the failure happened.
	turn, err := f.tutor.ContinueTeaching(ctx, sid)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if turn.MessageType != "explanation" {
		t.Errorf("retry step = %q, want explanation", turn.MessageType)
	}
}

func TestStepEventsJournaled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	if _, err := f.tutor.ContinueTeaching(ctx, sid); err != nil {
		t.Fatalf("continue: %v", err)
	}

	steps := f.journal.steps
	if len(steps) != 2 {
		t.Fatalf("journaled steps = %d, want welcome + introduction", len(steps))
	}
	if steps[0].StepKind != "welcome" || steps[1].StepKind != "concept_introduction" {
		t.Errorf("step kinds = %q, %q", steps[0].StepKind, steps[1].StepKind)
	}
	if steps[1].ConceptID != "numbers_1_to_5" {
		t.Errorf("concept id = %q", steps[1].ConceptID)
	}
	if steps[1].SessionID != sid {
		t.Errorf("session id = %q, want %q", steps[1].SessionID, sid)
	}
}
