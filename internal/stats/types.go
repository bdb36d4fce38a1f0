package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/leetcoach/internal/catalog"
)

// TopicStat holds raw interaction counts for one user on one topic.
// All counters are recomputed from the interaction store on every run;
// nothing here is persisted.
type TopicStat struct {
	Count              int // questions attempted in this topic
	Solved             int
	HintsUsed          int
	WatchedExplanation int
}

// Validate checks the counter invariants: everything non-negative and
// no sub-counter exceeding the attempt count.
func (s TopicStat) Validate(topic string) error {
	if s.Count < 0 || s.Solved < 0 || s.HintsUsed < 0 || s.WatchedExplanation < 0 {
		return fmt.Errorf("topic %q: negative counter in %+v", topic, s)
	}
	if s.Solved > s.Count || s.HintsUsed > s.Count || s.WatchedExplanation > s.Count {
		return fmt.Errorf("topic %q: sub-counter exceeds attempt count in %+v", topic, s)
	}
	return nil
}

// DifficultyStat holds attempt and solve counts at one difficulty level.
type DifficultyStat struct {
	Attempted int
	Solved    int
}

// Validate checks that Solved never exceeds Attempted.
func (s DifficultyStat) Validate(level catalog.Difficulty) error {
	if s.Attempted < 0 || s.Solved < 0 {
		return fmt.Errorf("difficulty %q: negative counter in %+v", level, s)
	}
	if s.Solved > s.Attempted {
		return fmt.Errorf("difficulty %q: solved %d exceeds attempted %d", level, s.Solved, s.Attempted)
	}
	return nil
}

// SolvedQuestion is one entry of a user's recent-solve history.
type SolvedQuestion struct {
	QuestionID string
	Topics     []string
	SolvedAt   time.Time
}

// InteractionStore is the read surface the aggregator consumes from the
// interaction graph. Implementations must fail fast with
// graph.ErrStoreUnavailable when the store is unreachable.
type InteractionStore interface {
	TopicStats(ctx context.Context, userID string) (map[string]TopicStat, error)
	DifficultyStats(ctx context.Context, userID string) (map[catalog.Difficulty]DifficultyStat, error)
	SolvedQuestionIDs(ctx context.Context, userID string) (map[string]bool, error)
	RecentlySolved(ctx context.Context, userID string, n int) ([]SolvedQuestion, error)
}
