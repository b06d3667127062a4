package console

import (
	"time"

	"github.com/abhisek/learno/internal/tutor"
)

// startedMsg delivers the opening turn of a freshly started lesson.
type startedMsg struct {
	Turn *tutor.Turn
	Err  error
}

// turnMsg delivers the next tutor turn (a teaching step, a question,
// praise, a hint, or the celebration).
type turnMsg struct {
	Turn *tutor.Turn
	Err  error
}

// summaryMsg delivers the end-of-lesson summary.
type summaryMsg struct {
	Summary *tutor.Summary
	Err     error
}

// silenceTickMsg fires once a second so the lesson screen can notice
// when the learner has gone quiet at a question.
type silenceTickMsg time.Time
