package store

import (
	"context"
	"fmt"

	"github.com/abhisek/leetcoach/ent"
	"github.com/abhisek/leetcoach/ent/runevent"
	"github.com/abhisek/leetcoach/internal/recommend"
)

// RunRepo implements recommend.RunLog as an append-only ent table with the
// shared global sequence.
type RunRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendRun records the audit entry for one recommendation run.
func (r *RunRepo) AppendRun(ctx context.Context, rec recommend.RunRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(rec.RunID).
		SetUserID(rec.UserID).
		SetState(rec.State).
		SetCandidates(rec.Candidates)

	if rec.Strategy != "" {
		builder = builder.SetStrategy(rec.Strategy)
	}
	if rec.Error != "" {
		builder = builder.SetError(rec.Error)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

// RecentRuns returns the latest run records for a user, newest first.
func (r *RunRepo) RecentRuns(ctx context.Context, userID string, limit int) ([]recommend.RunRecord, error) {
	rows, err := r.client.RunEvent.Query().
		Where(runevent.UserID(userID)).
		Order(ent.Desc(runevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}

	records := make([]recommend.RunRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recommend.RunRecord{
			RunID:      row.RunID,
			UserID:     row.UserID,
			Strategy:   row.Strategy,
			State:      row.State,
			Candidates: row.Candidates,
			Error:      row.Error,
		})
	}
	return records, nil
}
