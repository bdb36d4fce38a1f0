package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/leetcoach/internal/catalog"
)

type stubStore struct {
	topicStats map[string]TopicStat
	diffStats  map[catalog.Difficulty]DifficultyStat
	solved     map[string]bool
	recent     []SolvedQuestion
	err        error
}

func (s *stubStore) TopicStats(ctx context.Context, userID string) (map[string]TopicStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]TopicStat, len(s.topicStats))
	for k, v := range s.topicStats {
		out[k] = v
	}
	return out, nil
}

func (s *stubStore) DifficultyStats(ctx context.Context, userID string) (map[catalog.Difficulty]DifficultyStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[catalog.Difficulty]DifficultyStat, len(s.diffStats))
	for k, v := range s.diffStats {
		out[k] = v
	}
	return out, nil
}

func (s *stubStore) SolvedQuestionIDs(ctx context.Context, userID string) (map[string]bool, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.solved, nil
}

func (s *stubStore) RecentlySolved(ctx context.Context, userID string, n int) ([]SolvedQuestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if n < len(s.recent) {
		return s.recent[:n], nil
	}
	return s.recent, nil
}

type stubCatalog struct {
	questions []catalog.Question
	err       error
}

func (s *stubCatalog) AllTopics(ctx context.Context) (map[string]bool, error) {
	if s.err != nil {
		return nil, s.err
	}
	topics := make(map[string]bool)
	for _, q := range s.questions {
		for _, t := range q.Topics {
			topics[t] = true
		}
	}
	return topics, nil
}

func (s *stubCatalog) AllQuestions(ctx context.Context) ([]catalog.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

var aggQuestions = []catalog.Question{
	{ID: "two-sum", Difficulty: catalog.Easy, Topics: []string{"Arrays"}},
	{ID: "coin-change", Difficulty: catalog.Medium, Topics: []string{"DP"}},
	{ID: "word-ladder", Difficulty: catalog.Hard, Topics: []string{"Graphs"}},
}

func TestCollect_UnionsCatalogTopics(t *testing.T) {
	store := &stubStore{
		topicStats: map[string]TopicStat{"Arrays": {Count: 3, Solved: 2}},
	}
	agg := NewAggregator(store, &stubCatalog{questions: aggQuestions})

	summary, err := agg.Collect(context.Background(), "alice", 4)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	for _, topic := range []string{"Arrays", "DP", "Graphs"} {
		if _, ok := summary.TopicStats[topic]; !ok {
			t.Errorf("topic %q missing from summary", topic)
		}
	}
	if got := summary.TopicStats["DP"]; got != (TopicStat{}) {
		t.Errorf("never-attempted DP stats = %+v, want zero", got)
	}
	if got := summary.TopicStats["Arrays"].Solved; got != 2 {
		t.Errorf("Arrays solved = %d, want 2", got)
	}
}

func TestCollect_UnsolvedPool(t *testing.T) {
	store := &stubStore{solved: map[string]bool{"two-sum": true}}
	agg := NewAggregator(store, &stubCatalog{questions: aggQuestions})

	summary, err := agg.Collect(context.Background(), "alice", 4)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(summary.Unsolved) != 2 {
		t.Fatalf("unsolved = %d questions, want 2", len(summary.Unsolved))
	}
	// Sorted by ID for deterministic downstream ordering.
	if summary.Unsolved[0].ID != "coin-change" || summary.Unsolved[1].ID != "word-ladder" {
		t.Errorf("unsolved order = %s,%s", summary.Unsolved[0].ID, summary.Unsolved[1].ID)
	}
}

func TestCollect_FillsMissingDifficultyLevels(t *testing.T) {
	store := &stubStore{
		diffStats: map[catalog.Difficulty]DifficultyStat{
			catalog.Easy: {Attempted: 4, Solved: 3},
		},
	}
	agg := NewAggregator(store, &stubCatalog{questions: aggQuestions})

	summary, err := agg.Collect(context.Background(), "alice", 4)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	for _, level := range catalog.Levels {
		if _, ok := summary.DifficultyStats[level]; !ok {
			t.Errorf("difficulty %q missing from summary", level)
		}
	}
}

func TestCollect_StoreErrorAborts(t *testing.T) {
	storeErr := errors.New("store down")
	agg := NewAggregator(&stubStore{err: storeErr}, &stubCatalog{questions: aggQuestions})

	summary, err := agg.Collect(context.Background(), "alice", 4)
	if summary != nil {
		t.Errorf("expected no partial summary, got %+v", summary)
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestCollect_RejectsInvalidStats(t *testing.T) {
	store := &stubStore{
		topicStats: map[string]TopicStat{"Arrays": {Count: 2, Solved: 5}},
	}
	agg := NewAggregator(store, &stubCatalog{questions: aggQuestions})

	if _, err := agg.Collect(context.Background(), "alice", 4); err == nil {
		t.Error("expected error for solved exceeding attempts")
	}
}

func TestCollect_BoundsRecentSolves(t *testing.T) {
	recent := []SolvedQuestion{
		{QuestionID: "a", SolvedAt: time.Now()},
		{QuestionID: "b", SolvedAt: time.Now()},
		{QuestionID: "c", SolvedAt: time.Now()},
	}
	agg := NewAggregator(&stubStore{recent: recent}, &stubCatalog{questions: aggQuestions})

	summary, err := agg.Collect(context.Background(), "alice", 2)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(summary.RecentlySolved) != 2 {
		t.Errorf("recent = %d entries, want 2", len(summary.RecentlySolved))
	}
}

func TestAttemptCounts(t *testing.T) {
	s := &Summary{TopicStats: map[string]TopicStat{
		"Arrays": {Count: 7}, "DP": {},
	}}
	counts := s.AttemptCounts()
	if counts["Arrays"] != 7 || counts["DP"] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
