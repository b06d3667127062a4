package tutor

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/images"
	"github.com/abhisek/learno/internal/phrasing"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/store"
	"github.com/abhisek/learno/internal/teaching"
)

// celebrationScene is drawn when the celebration turn did not ask for
// its own picture.
const celebrationScene = "Celebration scene with confetti, stars, trophy, cartoon style"

// defaultSilenceHint fills in when no question is pending or the
// pending question carries no authored hint.
const defaultSilenceHint = "Take your time! You can do it! 😊"

// StartLesson renders the welcome turn and creates the session. Nothing
// is created when the lesson is not available or the welcome fails to
// phrase.
func (t *Tutor) StartLesson(ctx context.Context, req StartRequest) (*Turn, error) {
	if !t.catalog.Available(req.Grade, req.Subject, req.Lesson) {
		return nil, ErrLessonNotAvailable
	}
	ch := t.chapterFor(req.Lesson)

	text, err := t.speaker.Say(ctx, "welcome", phrasing.WelcomePrompt(ch))
	if err != nil {
		t.log.Error("welcome phrasing failed", "lesson", req.Lesson, "error", err)
		return nil, aiServiceError(err)
	}

	clean, desc := imagePolicy(teaching.Step{Kind: teaching.StepWelcome}, text)
	out := t.requestImage(ctx, desc)

	sess := t.sessions.Create(req.StudentID, req.StudentName, req.Grade, req.Subject, req.Lesson)
	sess.TotalSteps = ch.TotalConcepts() * teaching.StepsPerConcept
	t.sessions.Update(sess)

	state := teaching.NewState()
	t.commit(sess.ID, state)

	t.journalSession(ctx, store.SessionEventData{
		SessionID: sess.ID,
		Action:    "start",
		StudentID: req.StudentID,
		Grade:     req.Grade,
		Subject:   req.Subject,
		Lesson:    req.Lesson,
	})
	t.journalStep(ctx, store.StepEventData{
		SessionID:   sess.ID,
		StepKind:    string(teaching.StepWelcome),
		LessonPhase: string(state.LessonPhase),
		HasImage:    out.URL() != "",
	})
	t.journalImage(ctx, sess.ID, out)

	t.log.Info("lesson started",
		"session_id", sess.ID,
		"grade", req.Grade,
		"subject", req.Subject,
		"lesson", req.Lesson,
	)

	return &Turn{
		SessionID:   sess.ID,
		MessageType: string(teaching.StepWelcome),
		Text:        clean,
		ImageURL:    out.URL(),
		Progress:    progressFor(state, ch),
	}, nil
}

// ContinueTeaching renders the next teaching step and commits the
// resulting state.
func (t *Tutor) ContinueTeaching(ctx context.Context, sessionID string) (*Turn, error) {
	sess, err := t.session(sessionID)
	if err != nil {
		return nil, err
	}
	ch := t.chapterFor(sess.Lesson)
	state := t.state(sessionID)

	turn, step, out, err := t.renderNext(ctx, ch, state)
	if err != nil {
		return nil, err
	}

	t.commit(sessionID, step.Next)
	if step.LessonComplete && !sess.Complete {
		sess.Complete = true
		t.sessions.Update(sess)
	}

	t.journalStep(ctx, stepEvent(sessionID, step, out))
	t.journalImage(ctx, sessionID, out)
	return turn, nil
}

// SubmitAnswer evaluates the child's transcript against the pending
// expectation. A correct answer earns praise plus the next step; a miss
// earns an escalating hint and the question stays put.
func (t *Tutor) SubmitAnswer(ctx context.Context, sessionID, transcript string) (*Turn, error) {
	sess, err := t.session(sessionID)
	if err != nil {
		return nil, err
	}
	ch := t.chapterFor(sess.Lesson)
	state := t.state(sessionID)

	if teaching.EvaluateAnswer(transcript, state.Expectation) {
		return t.praiseAndAdvance(ctx, sess, ch, state, transcript)
	}
	return t.hint(ctx, sess, ch, state, transcript)
}

func (t *Tutor) praiseAndAdvance(ctx context.Context, sess *session.Session, ch *content.Chapter, state teaching.State, transcript string) (*Turn, error) {
	conceptID, phase, questionText := answerContext(state, ch)
	after := state.Correct()

	phrases := []string{"Great job! 🎉"}
	if c := ch.Concept(after.ConceptIndex); c != nil && len(c.Encouragements) > 0 {
		phrases = c.Encouragements
	}
	praise, err := t.speaker.Say(ctx, "praise", phrasing.PraisePrompt(phrases))
	if err != nil {
		t.log.Error("praise phrasing failed", "session_id", sess.ID, "error", err)
		return nil, aiServiceError(err)
	}

	turn, step, out, err := t.renderNext(ctx, ch, after)
	if err != nil {
		return nil, err
	}
	turn.Text = images.StripMarkers(praise) + "\n\n" + turn.Text

	t.commit(sess.ID, step.Next)
	if step.LessonComplete && !sess.Complete {
		sess.Complete = true
		t.sessions.Update(sess)
	}

	t.journalAnswer(ctx, store.AnswerEventData{
		SessionID:      sess.ID,
		ConceptID:      conceptID,
		Phase:          phase,
		QuestionText:   questionText,
		ExpectedAnswer: expectedAnswer(state.Expectation),
		Transcript:     transcript,
		Correct:        true,
		Attempts:       state.Attempts,
	})
	t.journalStep(ctx, stepEvent(sess.ID, step, out))
	t.journalImage(ctx, sess.ID, out)
	return turn, nil
}

func (t *Tutor) hint(ctx context.Context, sess *session.Session, ch *content.Chapter, state teaching.State, transcript string) (*Turn, error) {
	conceptID, phase, questionText := answerContext(state, ch)
	after := state.Wrong()
	exp := state.Expectation

	text, err := t.speaker.Say(ctx, "hint", phrasing.HintPrompt(phrasing.HintInput{
		Transcript: transcript,
		Expected:   exp.Answer,
		Hint:       exp.Hint,
		Attempts:   after.Attempts,
		ExtraHelp:  after.NeedsExtraHelp(),
	}))
	if err != nil {
		t.log.Error("hint phrasing failed", "session_id", sess.ID, "error", err)
		return nil, aiServiceError(err)
	}

	clean, desc := imagePolicy(teaching.Step{Kind: teaching.StepHint}, text)
	out := t.requestImage(ctx, desc)

	t.commit(sess.ID, after)

	t.journalAnswer(ctx, store.AnswerEventData{
		SessionID:      sess.ID,
		ConceptID:      conceptID,
		Phase:          phase,
		QuestionText:   questionText,
		ExpectedAnswer: exp.Answer,
		Transcript:     transcript,
		Correct:        false,
		Attempts:       after.Attempts,
	})
	t.journalHint(ctx, store.HintEventData{
		SessionID:    sess.ID,
		ConceptID:    conceptID,
		QuestionText: questionText,
		HintText:     clean,
		Attempts:     after.Attempts,
		Intensity:    string(teaching.IntensityFor(after.Attempts)),
		ExtraHelp:    after.NeedsExtraHelp(),
	})
	t.journalImage(ctx, sess.ID, out)

	return &Turn{
		MessageType: string(teaching.StepHint),
		Text:        clean,
		ImageURL:    out.URL(),
		Progress:    progressFor(after, ch),
	}, nil
}

// NotifySilence nudges a quiet child with gentle encouragement built on
// the pending hint. No counters move and nothing advances.
func (t *Tutor) NotifySilence(ctx context.Context, sessionID string, silenceSeconds int) (*Turn, error) {
	sess, err := t.session(sessionID)
	if err != nil {
		return nil, err
	}
	ch := t.chapterFor(sess.Lesson)
	state := t.state(sessionID)

	expected := ""
	hint := defaultSilenceHint
	if exp := state.Expectation; exp != nil {
		expected = exp.Answer
		if exp.Hint != "" {
			hint = exp.Hint
		}
	}

	text, err := t.speaker.Say(ctx, "silence", phrasing.HintPrompt(phrasing.HintInput{
		Expected: expected,
		Hint:     hint,
		Silence:  true,
	}))
	if err != nil {
		t.log.Error("silence phrasing failed", "session_id", sess.ID, "error", err)
		return nil, aiServiceError(err)
	}

	clean, desc := imagePolicy(teaching.Step{Kind: teaching.StepSilenceHint}, text)
	out := t.requestImage(ctx, desc)

	conceptID, _, questionText := answerContext(state, ch)
	t.journalHint(ctx, store.HintEventData{
		SessionID:    sess.ID,
		ConceptID:    conceptID,
		QuestionText: questionText,
		HintText:     clean,
		Silence:      true,
	})
	t.journalImage(ctx, sess.ID, out)

	t.log.Info("silence nudge", "session_id", sess.ID, "silence_seconds", silenceSeconds)

	return &Turn{
		MessageType: string(teaching.StepSilenceHint),
		Text:        clean,
		ImageURL:    out.URL(),
		Progress:    progressFor(state, ch),
	}, nil
}

// EndLesson reports the session totals and tears the session down.
func (t *Tutor) EndLesson(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := t.session(sessionID)
	if err != nil {
		return nil, err
	}
	state := t.state(sessionID)

	complete := state.LessonPhase == teaching.PhaseCompleted
	summary := &Summary{
		Message:           "Great effort today! 🌟",
		ConceptsCompleted: state.ConceptIndex,
		TotalCorrect:      state.TotalCorrect,
		TotalWrong:        state.TotalWrong,
		IsComplete:        complete,
	}
	if complete {
		summary.Message = "You completed the whole lesson! 🎉"
	}

	t.dropState(sessionID)
	t.sessions.Delete(sessionID)

	t.journalSession(ctx, store.SessionEventData{
		SessionID:         sessionID,
		Action:            "end",
		StudentID:         sess.StudentID,
		Grade:             sess.Grade,
		Subject:           sess.Subject,
		Lesson:            sess.Lesson,
		ConceptsCompleted: summary.ConceptsCompleted,
		TotalCorrect:      summary.TotalCorrect,
		TotalWrong:        summary.TotalWrong,
		Completed:         complete,
		DurationSecs:      int(time.Since(sess.CreatedAt).Seconds()),
	})

	t.log.Info("lesson ended",
		"session_id", sessionID,
		"concepts_completed", summary.ConceptsCompleted,
		"total_correct", summary.TotalCorrect,
		"total_wrong", summary.TotalWrong,
		"completed", complete,
	)
	return summary, nil
}

// renderNext advances the state machine one step and renders it.
// Nothing is committed here; callers commit step.Next only after every
// external call has succeeded.
func (t *Tutor) renderNext(ctx context.Context, ch *content.Chapter, state teaching.State) (*Turn, teaching.Step, *imageOutcome, error) {
	step, err := teaching.Advance(state, ch)
	if err != nil {
		return nil, teaching.Step{}, nil, fmt.Errorf("advance lesson: %w", err)
	}

	text, err := t.phrase(ctx, ch, state, step)
	if err != nil {
		t.log.Error("step phrasing failed", "step", string(step.Kind), "error", err)
		return nil, teaching.Step{}, nil, aiServiceError(err)
	}

	clean, desc := imagePolicy(step, text)
	out := t.requestImage(ctx, desc)

	return &Turn{
		MessageType: string(step.Kind),
		Text:        clean,
		ImageURL:    out.URL(),
		Progress:    progressFor(step.Next, ch),
		IsComplete:  step.LessonComplete,
	}, step, out, nil
}

// phrase builds the prompt for a step and speaks it.
func (t *Tutor) phrase(ctx context.Context, ch *content.Chapter, state teaching.State, step teaching.Step) (string, error) {
	switch step.Kind {
	case teaching.StepIntroduction:
		return t.speaker.Say(ctx, "introduction", phrasing.IntroductionPrompt(step.Concept))
	case teaching.StepExplanation:
		return t.speaker.Say(ctx, "explanation", phrasing.ExplanationPrompt(step.Concept))
	case teaching.StepVisual:
		return t.speaker.Say(ctx, "visual", phrasing.VisualPrompt(step.Concept))
	case teaching.StepGuidedQuestion:
		return t.speaker.Say(ctx, "guided", phrasing.GuidedPrompt(step.Concept.Name, step.Question, step.FirstGuided))
	case teaching.StepIndependentQuestion:
		return t.speaker.Say(ctx, "independent", phrasing.IndependentPrompt(step.Concept.Name, step.Question, step.QuestionNumber, step.QuestionTotal))
	case teaching.StepMasteryCheck:
		return t.speaker.Say(ctx, "mastery", phrasing.MasteryPrompt(step.Concept.Name, step.Question.Text))
	case teaching.StepReviewQuestion:
		return t.speaker.Say(ctx, "review", phrasing.ReviewPrompt(step.Question, step.QuestionNumber, step.QuestionTotal))
	case teaching.StepCelebration:
		total := state.TotalCorrect + state.TotalWrong
		return t.speaker.Say(ctx, "celebration", phrasing.CelebrationPrompt(ch.CompletionScript, state.TotalCorrect, total))
	}
	return "", fmt.Errorf("no phrasing for step kind %q", step.Kind)
}

// imagePolicy decides which illustration, if any, accompanies a step.
// An embedded marker normally wins; the visual example always draws the
// concept's own visual description, and celebrations always get a
// picture.
func imagePolicy(step teaching.Step, text string) (clean, description string) {
	marker, found := images.ExtractMarker(text)
	clean = images.StripMarkers(text)

	switch step.Kind {
	case teaching.StepVisual:
		return clean, step.Image
	case teaching.StepCelebration:
		if found {
			return clean, marker
		}
		return clean, celebrationScene
	case teaching.StepGuidedQuestion, teaching.StepIndependentQuestion:
		if found {
			return clean, marker
		}
		return clean, step.Image
	default:
		if found {
			return clean, marker
		}
		return clean, ""
	}
}

// answerContext recovers the pending question for journaling.
// Re-running Advance on the uncommitted state re-renders the same
// question because cursors only move on a correct answer.
func answerContext(state teaching.State, ch *content.Chapter) (conceptID, phase, questionText string) {
	if c := ch.Concept(state.ConceptIndex); c != nil {
		conceptID = c.ID
	}
	phase = string(state.ConceptPhase)
	if state.LessonPhase == teaching.PhaseChapterReview {
		phase = "chapter_review"
	}
	if step, err := teaching.Advance(state, ch); err == nil && step.Question != nil {
		questionText = step.Question.Text
	}
	return conceptID, phase, questionText
}

func expectedAnswer(exp *teaching.Expectation) string {
	if exp == nil {
		return ""
	}
	return exp.Answer
}

func stepEvent(sessionID string, step teaching.Step, out *imageOutcome) store.StepEventData {
	data := store.StepEventData{
		SessionID:      sessionID,
		StepKind:       string(step.Kind),
		LessonPhase:    string(step.Next.LessonPhase),
		QuestionNumber: step.QuestionNumber,
		HasImage:       out.URL() != "",
	}
	if step.Concept != nil {
		data.ConceptID = step.Concept.ID
	}
	return data
}
