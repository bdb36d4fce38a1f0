package store

import (
	"context"
	"fmt"

	"github.com/abhisek/leetcoach/ent"
	"github.com/abhisek/leetcoach/ent/recommendationentry"
	"github.com/abhisek/leetcoach/internal/history"
)

// HistoryRepo implements history.Repo over the ent recommendation_entries
// table.
type HistoryRepo struct {
	client *ent.Client
}

// Load returns the full recommendation history for a user, keyed by
// question ID. A user with no history yields an empty map.
func (r *HistoryRepo) Load(ctx context.Context, userID string) (map[string]history.Entry, error) {
	rows, err := r.client.RecommendationEntry.Query().
		Where(recommendationentry.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history for %s: %w", userID, err)
	}

	entries := make(map[string]history.Entry, len(rows))
	for _, row := range rows {
		entries[row.QuestionID] = history.Entry{
			LastRecommendedAt: row.LastRecommendedAt,
			TimesRecommended:  row.TimesRecommended,
			BoostGranted:      row.BoostGranted,
		}
	}
	return entries, nil
}

// Save replaces the stored history for a user in one transaction, so a
// failed write never leaves a half-updated history behind.
func (r *HistoryRepo) Save(ctx context.Context, userID string, entries map[string]history.Entry) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}

	_, err = tx.RecommendationEntry.Delete().
		Where(recommendationentry.UserID(userID)).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear history for %s: %w", userID, err)
	}

	for questionID, entry := range entries {
		_, err = tx.RecommendationEntry.Create().
			SetUserID(userID).
			SetQuestionID(questionID).
			SetLastRecommendedAt(entry.LastRecommendedAt).
			SetTimesRecommended(entry.TimesRecommended).
			SetBoostGranted(entry.BoostGranted).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save history entry %s/%s: %w", userID, questionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history for %s: %w", userID, err)
	}
	return nil
}

// Clear removes all history for a user (used by reset).
func (r *HistoryRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.client.RecommendationEntry.Delete().
		Where(recommendationentry.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear history for %s: %w", userID, err)
	}
	return nil
}
