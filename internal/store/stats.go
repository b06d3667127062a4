package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learno/ent/answerevent"
	"github.com/abhisek/learno/ent/hintevent"
	"github.com/abhisek/learno/ent/imageevent"
	"github.com/abhisek/learno/ent/sessionevent"
)

// Stats aggregates the whole journal for the stats command.
func (r *eventRepo) Stats(ctx context.Context) (*LessonStats, error) {
	var stats LessonStats
	var err error

	count := func(label string, q func() (int, error)) (int, error) {
		n, qerr := q()
		if qerr != nil {
			return 0, fmt.Errorf("count %s: %w", label, qerr)
		}
		return n, nil
	}

	if stats.SessionsStarted, err = count("started sessions", func() (int, error) {
		return r.client.SessionEvent.Query().Where(sessionevent.Action("start")).Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.SessionsEnded, err = count("ended sessions", func() (int, error) {
		return r.client.SessionEvent.Query().Where(sessionevent.Action("end")).Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.SessionsCompleted, err = count("completed sessions", func() (int, error) {
		return r.client.SessionEvent.Query().
			Where(sessionevent.Action("end"), sessionevent.Completed(true)).
			Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.StepsDelivered, err = count("steps", func() (int, error) {
		return r.client.StepEvent.Query().Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.AnswersTotal, err = count("answers", func() (int, error) {
		return r.client.AnswerEvent.Query().Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.AnswersCorrect, err = count("correct answers", func() (int, error) {
		return r.client.AnswerEvent.Query().Where(answerevent.Correct(true)).Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.HintsGiven, err = count("hints", func() (int, error) {
		return r.client.HintEvent.Query().Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.SilenceNudges, err = count("silence nudges", func() (int, error) {
		return r.client.HintEvent.Query().Where(hintevent.Silence(true)).Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.ImagesGenerated, err = count("generated images", func() (int, error) {
		return r.client.ImageEvent.Query().Where(imageevent.Success(true)).Count(ctx)
	}); err != nil {
		return nil, err
	}
	if stats.ImagesFailed, err = count("failed images", func() (int, error) {
		return r.client.ImageEvent.Query().Where(imageevent.Success(false)).Count(ctx)
	}); err != nil {
		return nil, err
	}

	return &stats, nil
}
