package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learno/ent"
	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/llm"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/phrasing"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/store"
)

type speakerCall struct {
	purpose string
	prompt  string
}

// scriptedSpeaker answers every prompt with a recognizable line and
// records what it was asked.
type scriptedSpeaker struct {
	calls   []speakerCall
	failOn  string            // purpose that should error
	replies map[string]string // per-purpose canned replies
}

func (s *scriptedSpeaker) Say(_ context.Context, purpose, prompt string) (string, error) {
	s.calls = append(s.calls, speakerCall{purpose, prompt})
	if s.failOn != "" && purpose == s.failOn {
		return "", errors.New("provider down")
	}
	if reply, ok := s.replies[purpose]; ok {
		return reply, nil
	}
	return "spoken:" + purpose, nil
}

func (s *scriptedSpeaker) reply(purpose, text string) {
	if s.replies == nil {
		s.replies = make(map[string]string)
	}
	s.replies[purpose] = text
}

func (s *scriptedSpeaker) lastCall() speakerCall {
	if len(s.calls) == 0 {
		return speakerCall{}
	}
	return s.calls[len(s.calls)-1]
}

type fakeIllustrator struct {
	calls []string
	url   string
	err   error
}

func (f *fakeIllustrator) Generate(_ context.Context, description string) (string, error) {
	f.calls = append(f.calls, description)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// fakeJournal records appended events and can be told to fail, which
// must never fail a teaching operation.
type fakeJournal struct {
	fail     bool
	sessions []store.SessionEventData
	steps    []store.StepEventData
	answers  []store.AnswerEventData
	hints    []store.HintEventData
	images   []store.ImageEventData
}

func (j *fakeJournal) appendErr() error {
	if j.fail {
		return errors.New("journal closed")
	}
	return nil
}

func (j *fakeJournal) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	j.sessions = append(j.sessions, d)
	return j.appendErr()
}

func (j *fakeJournal) AppendStepEvent(_ context.Context, d store.StepEventData) error {
	j.steps = append(j.steps, d)
	return j.appendErr()
}

func (j *fakeJournal) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	j.answers = append(j.answers, d)
	return j.appendErr()
}

func (j *fakeJournal) AppendHintEvent(_ context.Context, d store.HintEventData) error {
	j.hints = append(j.hints, d)
	return j.appendErr()
}

func (j *fakeJournal) AppendImageEvent(_ context.Context, d store.ImageEventData) error {
	j.images = append(j.images, d)
	return j.appendErr()
}

func (j *fakeJournal) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (j *fakeJournal) QueryLLMEvents(context.Context, store.QueryOpts) ([]*ent.LLMRequestEvent, error) {
	return nil, nil
}

func (j *fakeJournal) GetLLMEvent(context.Context, int) (*ent.LLMRequestEvent, error) {
	return nil, nil
}

func (j *fakeJournal) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (j *fakeJournal) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (j *fakeJournal) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (j *fakeJournal) Stats(context.Context) (*store.LessonStats, error) {
	return nil, nil
}

type fixture struct {
	tutor       *Tutor
	sessions    *session.Store
	speaker     *scriptedSpeaker
	illustrator *fakeIllustrator
	journal     *fakeJournal
	clock       *fakeClock
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	sessions := session.NewStore(30*time.Minute, session.WithClock(clock.Now))
	speaker := &scriptedSpeaker{}
	illustrator := &fakeIllustrator{url: "https://img.test/pic.png"}
	journal := &fakeJournal{}
	tut := New(sessions, content.NewCatalog(), speaker, logger.Nop(),
		WithIllustrator(illustrator), WithJournal(journal))
	return &fixture{
		tutor:       tut,
		sessions:    sessions,
		speaker:     speaker,
		illustrator: illustrator,
		journal:     journal,
		clock:       clock,
	}
}

func startCounting(t *testing.T, f *fixture) string {
	t.Helper()
	turn, err := f.tutor.StartLesson(context.Background(), StartRequest{
		StudentID:   "kid-1",
		StudentName: "Mina",
		Grade:       2,
		Subject:     "math",
		Lesson:      "counting",
	})
	if err != nil {
		t.Fatalf("start lesson: %v", err)
	}
	return turn.SessionID
}

func TestStartLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	turn, err := f.tutor.StartLesson(ctx, StartRequest{
		StudentID:   "kid-1",
		StudentName: "Mina",
		Grade:       2,
		Subject:     "Math",
		Lesson:      "Counting",
	})
	if err != nil {
		t.Fatalf("start lesson: %v", err)
	}

	if turn.SessionID == "" {
		t.Error("expected a session id")
	}
	if turn.MessageType != "welcome" {
		t.Errorf("message type = %q, want welcome", turn.MessageType)
	}
	if turn.Text != "spoken:welcome" {
		t.Errorf("text = %q", turn.Text)
	}
	if turn.IsComplete {
		t.Error("fresh lesson must not be complete")
	}

	p := turn.Progress
	if p.LessonPhase != "welcome" || p.ConceptPhase != "introduction" {
		t.Errorf("progress phases = %s/%s, want welcome/introduction", p.LessonPhase, p.ConceptPhase)
	}
	if p.CurrentConcept != 1 || p.TotalConcepts != 5 {
		t.Errorf("concept position = %d/%d, want 1/5", p.CurrentConcept, p.TotalConcepts)
	}

	if f.sessions.Count() != 1 {
		t.Errorf("session count = %d, want 1", f.sessions.Count())
	}
	sess, err := f.sessions.Get(turn.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.TotalSteps != 30 {
		t.Errorf("total steps = %d, want 30", sess.TotalSteps)
	}
	if sess.StudentName != "Mina" {
		t.Errorf("student name = %q, want Mina", sess.StudentName)
	}

	if len(f.speaker.calls) != 1 || f.speaker.calls[0].purpose != "welcome" {
		t.Fatalf("speaker calls = %+v, want one welcome call", f.speaker.calls)
	}
	if !strings.Contains(f.speaker.calls[0].prompt, "Counting Fun Adventure") {
		t.Error("welcome prompt should carry the chapter title")
	}
}

func TestStartLessonRealPhraser(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	sessions := session.NewStore(30*time.Minute, session.WithClock(clock.Now))
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"text": "Hi! Welcome to counting! 🎉"}`),
	})
	tut := New(sessions, content.NewCatalog(), phrasing.New(mock, phrasing.DefaultConfig()), logger.Nop())

	turn, err := tut.StartLesson(context.Background(), StartRequest{
		Grade: 2, Subject: "math", Lesson: "counting",
	})
	if err != nil {
		t.Fatalf("start lesson: %v", err)
	}
	if turn.Text != "Hi! Welcome to counting! 🎉" {
		t.Errorf("text = %q", turn.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestStartLessonNotAvailable(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		grade   int
		subject string
		lesson  string
	}{
		{"wrong grade", 3, "math", "counting"},
		{"wrong subject", 2, "science", "counting"},
		{"unknown lesson", 2, "math", "algebra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.tutor.StartLesson(context.Background(), StartRequest{
				Grade: tt.grade, Subject: tt.subject, Lesson: tt.lesson,
			})
			if !errors.Is(err, ErrLessonNotAvailable) {
				t.Fatalf("err = %v, want ErrLessonNotAvailable", err)
			}
		})
	}

	if f.sessions.Count() != 0 {
		t.Errorf("session count = %d, want 0", f.sessions.Count())
	}
	if len(f.speaker.calls) != 0 {
		t.Errorf("speaker calls = %d, want 0", len(f.speaker.calls))
	}
}

func TestStartLessonPhrasingFailureCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.speaker.failOn = "welcome"

	_, err := f.tutor.StartLesson(context.Background(), StartRequest{
		Grade: 2, Subject: "math", Lesson: "counting",
	})
	if !errors.Is(err, ErrAIService) {
		t.Fatalf("err = %v, want ErrAIService", err)
	}
	if f.sessions.Count() != 0 {
		t.Errorf("session count = %d, want 0", f.sessions.Count())
	}
	if len(f.journal.sessions) != 0 {
		t.Errorf("journaled sessions = %d, want 0", len(f.journal.sessions))
	}
}

func TestSessionNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.tutor.ContinueTeaching(ctx, "nope"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("continue err = %v, want ErrNotFound", err)
	}
	if _, err := f.tutor.SubmitAnswer(ctx, "nope", "3"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("respond err = %v, want ErrNotFound", err)
	}
	if _, err := f.tutor.NotifySilence(ctx, "nope", 15); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("silence err = %v, want ErrNotFound", err)
	}
	if _, err := f.tutor.EndLesson(ctx, "nope"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("end err = %v, want ErrNotFound", err)
	}
}

func TestExpiredSessionDropsTeachingState(t *testing.T) {
	f := newFixture(t)
	sid := startCounting(t, f)

	f.clock.Advance(31 * time.Minute)

	_, err := f.tutor.ContinueTeaching(context.Background(), sid)
	if !errors.Is(err, session.ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}

	f.tutor.mu.Lock()
	_, still := f.tutor.states[sid]
	f.tutor.mu.Unlock()
	if still {
		t.Error("teaching state should be dropped with the expired session")
	}
}

func TestEndLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	summary, err := f.tutor.EndLesson(ctx, sid)
	if err != nil {
		t.Fatalf("end lesson: %v", err)
	}
	if summary.IsComplete {
		t.Error("barely started lesson must not be complete")
	}
	if summary.Message != "Great effort today! 🌟" {
		t.Errorf("message = %q", summary.Message)
	}
	if summary.ConceptsCompleted != 0 || summary.TotalCorrect != 0 || summary.TotalWrong != 0 {
		t.Errorf("summary = %+v, want zeros", summary)
	}

	// Session and state are gone.
	if _, err := f.tutor.ContinueTeaching(ctx, sid); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("continue after end: err = %v, want ErrNotFound", err)
	}

	// The end event carries the session identity.
	last := f.journal.sessions[len(f.journal.sessions)-1]
	if last.Action != "end" || last.SessionID != sid {
		t.Errorf("end event = %+v", last)
	}
	if last.Lesson != "counting" || last.StudentID != "kid-1" {
		t.Errorf("end event identity = %+v", last)
	}
}

func TestJournalFailureDoesNotFailTeaching(t *testing.T) {
	f := newFixture(t)
	f.journal.fail = true

	turn, err := f.tutor.StartLesson(context.Background(), StartRequest{
		Grade: 2, Subject: "math", Lesson: "counting",
	})
	if err != nil {
		t.Fatalf("start lesson with broken journal: %v", err)
	}
	if _, err := f.tutor.ContinueTeaching(context.Background(), turn.SessionID); err != nil {
		t.Fatalf("continue with broken journal: %v", err)
	}
}

func TestChapterFallbackForWhitelistedLesson(t *testing.T) {
	f := newFixture(t)

	// "even and odd" is whitelisted but has no authored chapter, so the
	// default counting chapter teaches it.
	turn, err := f.tutor.StartLesson(context.Background(), StartRequest{
		Grade: 2, Subject: "math", Lesson: "even and odd",
	})
	if err != nil {
		t.Fatalf("start lesson: %v", err)
	}
	if turn.Progress.TotalConcepts != 5 {
		t.Errorf("total concepts = %d, want 5 from the fallback chapter", turn.Progress.TotalConcepts)
	}
	if !strings.Contains(f.speaker.calls[0].prompt, "Counting Fun Adventure") {
		t.Error("fallback chapter should drive the welcome prompt")
	}
}

// driveUntilComplete plays the whole lesson by always answering with
// the canonical expected answer.
func driveUntilComplete(t *testing.T, f *fixture, sid string) *Turn {
	t.Helper()
	ctx := context.Background()

	questionKinds := map[string]bool{
		"guided_practice":      true,
		"independent_practice": true,
		"mastery_check":        true,
		"chapter_review":       true,
	}

	turn, err := f.tutor.ContinueTeaching(ctx, sid)
	if err != nil {
		t.Fatalf("first continue: %v", err)
	}
	for i := 0; i < 200 && !turn.IsComplete; i++ {
		if questionKinds[turn.MessageType] {
			exp := f.tutor.state(sid).Expectation
			if exp == nil {
				t.Fatalf("question step %q with no pending expectation", turn.MessageType)
			}
			turn, err = f.tutor.SubmitAnswer(ctx, sid, exp.Answer)
		} else {
			turn, err = f.tutor.ContinueTeaching(ctx, sid)
		}
		if err != nil {
			t.Fatalf("drive step %d: %v", i, err)
		}
	}
	if !turn.IsComplete {
		t.Fatal("lesson never completed")
	}
	return turn
}

func chapterQuestionCount(ch *content.Chapter) int {
	n := len(ch.ReviewQuestions)
	for i := 0; i < ch.TotalConcepts(); i++ {
		c := ch.Concept(i)
		n += len(c.Guided) + len(c.Independent) + 1
	}
	return n
}

func TestFullLessonDrive(t *testing.T) {
	f := newFixture(t)
	sid := startCounting(t, f)

	turn := driveUntilComplete(t, f, sid)

	if turn.MessageType != "celebration" {
		t.Errorf("final message type = %q, want celebration", turn.MessageType)
	}
	if turn.Progress.LessonPhase != "completed" {
		t.Errorf("final lesson phase = %q, want completed", turn.Progress.LessonPhase)
	}

	catalog := content.NewCatalog()
	ch, _ := catalog.Chapter("counting")
	want := chapterQuestionCount(ch)
	if turn.Progress.TotalCorrect != want {
		t.Errorf("total correct = %d, want %d", turn.Progress.TotalCorrect, want)
	}
	if turn.Progress.TotalWrong != 0 {
		t.Errorf("total wrong = %d, want 0", turn.Progress.TotalWrong)
	}

	// The celebration always draws a picture.
	lastImage := f.illustrator.calls[len(f.illustrator.calls)-1]
	if lastImage != celebrationScene {
		t.Errorf("last illustration = %q, want the celebration scene", lastImage)
	}

	// Every concept's visual example was drawn.
	joined := strings.Join(f.illustrator.calls, "\n")
	for i := 0; i < ch.TotalConcepts(); i++ {
		if !strings.Contains(joined, ch.Concept(i).VisualDescription) {
			t.Errorf("concept %d visual description never illustrated", i)
		}
	}

	summary, err := f.tutor.EndLesson(context.Background(), sid)
	if err != nil {
		t.Fatalf("end lesson: %v", err)
	}
	if !summary.IsComplete {
		t.Error("summary should report completion")
	}
	if summary.Message != "You completed the whole lesson! 🎉" {
		t.Errorf("message = %q", summary.Message)
	}
	if summary.ConceptsCompleted != 5 {
		t.Errorf("concepts completed = %d, want 5", summary.ConceptsCompleted)
	}
	if summary.TotalCorrect != want {
		t.Errorf("summary correct = %d, want %d", summary.TotalCorrect, want)
	}
}

func TestCompletedLessonStaysCompleted(t *testing.T) {
	f := newFixture(t)
	sid := startCounting(t, f)
	driveUntilComplete(t, f, sid)

	// Another continue re-renders the celebration without advancing.
	turn, err := f.tutor.ContinueTeaching(context.Background(), sid)
	if err != nil {
		t.Fatalf("continue after completion: %v", err)
	}
	if turn.MessageType != "celebration" || !turn.IsComplete {
		t.Errorf("turn = %q complete=%v, want celebration/true", turn.MessageType, turn.IsComplete)
	}

	sess, err := f.sessions.Get(sid)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !sess.Complete {
		t.Error("session should be flagged complete")
	}
}

func TestProgressCountsAnswersExactly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sid := startCounting(t, f)

	// Reach the first guided question: intro, explanation, visual, question.
	var turn *Turn
	var err error
	for i := 0; i < 4; i++ {
		turn, err = f.tutor.ContinueTeaching(ctx, sid)
		if err != nil {
			t.Fatalf("continue %d: %v", i, err)
		}
	}
	if turn.MessageType != "guided_practice" {
		t.Fatalf("step 4 = %q, want guided_practice", turn.MessageType)
	}

	// Two misses then a hit.
	for i := 0; i < 2; i++ {
		turn, err = f.tutor.SubmitAnswer(ctx, sid, "banana")
		if err != nil {
			t.Fatalf("wrong answer %d: %v", i, err)
		}
		if turn.MessageType != "hint" {
			t.Fatalf("wrong answer turn = %q, want hint", turn.MessageType)
		}
	}
	turn, err = f.tutor.SubmitAnswer(ctx, sid, "2")
	if err != nil {
		t.Fatalf("correct answer: %v", err)
	}

	if turn.Progress.TotalCorrect != 1 || turn.Progress.TotalWrong != 2 {
		t.Errorf("totals = %d/%d, want 1 correct / 2 wrong",
			turn.Progress.TotalCorrect, turn.Progress.TotalWrong)
	}

	if len(f.journal.answers) != 3 {
		t.Errorf("journaled answers = %d, want 3", len(f.journal.answers))
	}
}
