package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learno/ent"
	"github.com/abhisek/learno/ent/hintevent"
	"github.com/abhisek/learno/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetStudentID(data.StudentID).
		SetGrade(data.Grade).
		SetSubject(data.Subject).
		SetLesson(data.Lesson).
		SetConceptsCompleted(data.ConceptsCompleted).
		SetTotalCorrect(data.TotalCorrect).
		SetTotalWrong(data.TotalWrong).
		SetCompleted(data.Completed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		// Count hints given during this session.
		hintCount, _ := r.client.HintEvent.Query().
			Where(hintevent.SessionID(e.SessionID)).
			Count(ctx)

		records[i] = SessionSummaryRecord{
			SessionID:         e.SessionID,
			Timestamp:         e.Timestamp,
			Lesson:            e.Lesson,
			ConceptsCompleted: e.ConceptsCompleted,
			TotalCorrect:      e.TotalCorrect,
			TotalWrong:        e.TotalWrong,
			Completed:         e.Completed,
			DurationSecs:      e.DurationSecs,
			HintCount:         hintCount,
		}
	}
	return records, nil
}
