package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learno/internal/router"
	"github.com/abhisek/learno/internal/screen"
	"github.com/abhisek/learno/internal/teaching"
	"github.com/abhisek/learno/internal/tutor"
	"github.com/abhisek/learno/internal/ui/components"
	"github.com/abhisek/learno/internal/ui/layout"
)

// entry is one line of the on-screen conversation: either a tutor turn
// or what the learner typed.
type entry struct {
	turn    *tutor.Turn
	learner string
}

// lessonScreen plays a lesson turn by turn: it shows the conversation,
// collects answers at questions, nudges after silence, and hands off
// to the summary screen when the lesson ends.
type lessonScreen struct {
	opts Options
	req  tutor.StartRequest

	sessionID  string
	transcript []entry
	input      components.TextInput

	waiting     bool // a tutor call is in flight
	pending     bool // an unanswered question is on screen
	complete    bool
	quitConfirm bool
	nudged      bool
	lastActive  time.Time
	errMsg      string
	fatal       bool // error ends the lesson screen instead of pausing it
}

var _ screen.Screen = (*lessonScreen)(nil)
var _ screen.KeyHintProvider = (*lessonScreen)(nil)
var _ screen.StatusProvider = (*lessonScreen)(nil)

func newLessonScreen(opts Options, req tutor.StartRequest) *lessonScreen {
	return &lessonScreen{
		opts:       opts,
		req:        req,
		input:      components.NewTextInput("Type your answer...", 100),
		lastActive: time.Now(),
	}
}

func (s *lessonScreen) Init() tea.Cmd {
	s.waiting = true
	cmds := []tea.Cmd{s.start(), s.input.Init()}
	if s.opts.SilenceAfter > 0 {
		cmds = append(cmds, silenceTick())
	}
	return tea.Batch(cmds...)
}

func (s *lessonScreen) Title() string {
	return fmt.Sprintf("Lesson: %s", s.req.Lesson)
}

func (s *lessonScreen) Status() string {
	turn := s.lastTurn()
	if turn == nil {
		return ""
	}
	p := turn.Progress
	pos := fmt.Sprintf("Concept %d/%d", p.CurrentConcept, p.TotalConcepts)
	if p.CurrentConcept > p.TotalConcepts {
		pos = "Review"
	}
	if s.complete {
		pos = "Done!"
	}
	return fmt.Sprintf("★ %d   %s", p.TotalCorrect, pos)
}

func (s *lessonScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End lesson"},
			{Key: "N", Description: "Keep learning"},
		}
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.complete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "See summary"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case s.pending:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End lesson"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "End lesson"},
		}
	}
}

func (s *lessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.fatal = true
			return s, nil
		}
		s.sessionID = msg.Turn.SessionID
		s.absorb(msg.Turn)
		return s, nil

	case turnMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.absorb(msg.Turn)
		return s, nil

	case summaryMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		sum := msg.Summary
		opts := s.opts
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: newSummaryScreen(opts, sum)}
		}

	case silenceTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// absorb records a tutor turn and works out what the lesson screen is
// now waiting for.
func (s *lessonScreen) absorb(turn *tutor.Turn) {
	s.transcript = append(s.transcript, entry{turn: turn})

	switch kind := teaching.StepKind(turn.MessageType); {
	case kind.AsksQuestion():
		s.pending = true
		s.nudged = false
	case kind == teaching.StepSilenceHint:
		// One nudge per question: stay nudged until the learner acts.
	case kind == teaching.StepHint:
		s.nudged = false
	default:
		s.pending = false
		s.nudged = false
	}

	s.complete = turn.IsComplete
	s.lastActive = time.Now()
	s.input.Reset()
}

func (s *lessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.lastActive = time.Now()
	key := msg.String()

	if s.errMsg != "" {
		if s.fatal {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.errMsg = ""
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.waiting = true
			return s, s.end()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if s.waiting {
			return s, nil
		}
		if s.complete {
			s.waiting = true
			return s, s.end()
		}
		s.quitConfirm = true
		return s, nil

	case "enter":
		if s.waiting {
			return s, nil
		}
		if s.complete {
			s.waiting = true
			return s, s.end()
		}
		if s.pending {
			answer := strings.TrimSpace(s.input.Value())
			if answer == "" {
				return s, nil
			}
			s.transcript = append(s.transcript, entry{learner: answer})
			s.waiting = true
			return s, s.respond(answer)
		}
		s.waiting = true
		return s, s.next()
	}

	if s.pending && !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *lessonScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.complete || s.opts.SilenceAfter <= 0 {
		return s, nil
	}

	quiet := time.Since(s.lastActive) >= s.opts.SilenceAfter
	if quiet && s.pending && !s.waiting && !s.nudged && !s.quitConfirm && s.errMsg == "" {
		s.nudged = true
		s.waiting = true
		return s, tea.Batch(s.nudge(), silenceTick())
	}

	return s, silenceTick()
}

// lastTurn returns the most recent tutor turn, or nil before the
// lesson has started.
func (s *lessonScreen) lastTurn() *tutor.Turn {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].turn != nil {
			return s.transcript[i].turn
		}
	}
	return nil
}

func (s *lessonScreen) start() tea.Cmd {
	tut, req := s.opts.Tutor, s.req
	return func() tea.Msg {
		turn, err := tut.StartLesson(context.Background(), req)
		return startedMsg{Turn: turn, Err: err}
	}
}

func (s *lessonScreen) next() tea.Cmd {
	tut, sid := s.opts.Tutor, s.sessionID
	return func() tea.Msg {
		turn, err := tut.ContinueTeaching(context.Background(), sid)
		return turnMsg{Turn: turn, Err: err}
	}
}

func (s *lessonScreen) respond(answer string) tea.Cmd {
	tut, sid := s.opts.Tutor, s.sessionID
	return func() tea.Msg {
		turn, err := tut.SubmitAnswer(context.Background(), sid, answer)
		return turnMsg{Turn: turn, Err: err}
	}
}

func (s *lessonScreen) nudge() tea.Cmd {
	tut, sid := s.opts.Tutor, s.sessionID
	secs := int(s.opts.SilenceAfter.Seconds())
	return func() tea.Msg {
		turn, err := tut.NotifySilence(context.Background(), sid, secs)
		return turnMsg{Turn: turn, Err: err}
	}
}

func (s *lessonScreen) end() tea.Cmd {
	tut, sid := s.opts.Tutor, s.sessionID
	return func() tea.Msg {
		sum, err := tut.EndLesson(context.Background(), sid)
		return summaryMsg{Summary: sum, Err: err}
	}
}

// silenceTick fires once a second to watch for learner inactivity.
func silenceTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return silenceTickMsg(t)
	})
}
