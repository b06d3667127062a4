package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendImageEvent(ctx context.Context, data ImageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ImageEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDescription(data.Description).
		SetURL(data.URL).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save image event: %w", err)
	}
	return nil
}
