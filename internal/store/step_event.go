package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendStepEvent(ctx context.Context, data StepEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StepEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStepKind(data.StepKind).
		SetLessonPhase(data.LessonPhase).
		SetConceptID(data.ConceptID).
		SetQuestionNumber(data.QuestionNumber).
		SetHasImage(data.HasImage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save step event: %w", err)
	}
	return nil
}
