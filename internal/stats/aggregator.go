package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/leetcoach/internal/catalog"
)

// Summary is the aggregated view of one user's interaction history that the
// rest of the recommendation pipeline consumes.
type Summary struct {
	TopicStats      map[string]TopicStat
	DifficultyStats map[catalog.Difficulty]DifficultyStat
	Unsolved        []catalog.Question
	RecentlySolved  []SolvedQuestion
}

// Aggregator turns raw per-user interaction rows into topic stats,
// difficulty stats and the unsolved-question pool.
type Aggregator struct {
	store   InteractionStore
	catalog catalog.Repo
}

// NewAggregator creates an Aggregator over the given collaborators.
func NewAggregator(store InteractionStore, cat catalog.Repo) *Aggregator {
	return &Aggregator{store: store, catalog: cat}
}

// Collect gathers the full interaction summary for a user. recentN bounds
// the recent-solve history used by strategy selection.
//
// Topic stats are unioned with the catalog topic set so topics the user has
// never attempted appear with all-zero stats; exploration ranking depends on
// seeing them. Any store failure aborts with no partial result.
func (a *Aggregator) Collect(ctx context.Context, userID string, recentN int) (*Summary, error) {
	topicStats, err := a.store.TopicStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic stats for %s: %w", userID, err)
	}
	for topic, ts := range topicStats {
		if err := ts.Validate(topic); err != nil {
			return nil, fmt.Errorf("invalid topic stats: %w", err)
		}
	}

	allTopics, err := a.catalog.AllTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog topics: %w", err)
	}
	for topic := range allTopics {
		if _, ok := topicStats[topic]; !ok {
			topicStats[topic] = TopicStat{}
		}
	}

	diffStats, err := a.store.DifficultyStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("difficulty stats for %s: %w", userID, err)
	}
	for _, level := range catalog.Levels {
		ds, ok := diffStats[level]
		if !ok {
			diffStats[level] = DifficultyStat{}
			continue
		}
		if err := ds.Validate(level); err != nil {
			return nil, fmt.Errorf("invalid difficulty stats: %w", err)
		}
	}

	solved, err := a.store.SolvedQuestionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("solved questions for %s: %w", userID, err)
	}

	questions, err := a.catalog.AllQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog questions: %w", err)
	}
	var unsolved []catalog.Question
	for _, q := range questions {
		if !solved[q.ID] {
			unsolved = append(unsolved, q)
		}
	}
	sort.Slice(unsolved, func(i, j int) bool { return unsolved[i].ID < unsolved[j].ID })

	recent, err := a.store.RecentlySolved(ctx, userID, recentN)
	if err != nil {
		return nil, fmt.Errorf("recently solved for %s: %w", userID, err)
	}

	return &Summary{
		TopicStats:      topicStats,
		DifficultyStats: diffStats,
		Unsolved:        unsolved,
		RecentlySolved:  recent,
	}, nil
}

// AttemptCounts extracts the per-topic attempt counts from the summary.
// Used by exploration ranking and strategy selection.
func (s *Summary) AttemptCounts() map[string]int {
	counts := make(map[string]int, len(s.TopicStats))
	for topic, ts := range s.TopicStats {
		counts[topic] = ts.Count
	}
	return counts
}
