package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/graph"
	"github.com/abhisek/leetcoach/internal/history"
	"github.com/abhisek/leetcoach/internal/stats"
	"github.com/abhisek/leetcoach/internal/strategy"
)

type fakeInteractionStore struct {
	topicStats map[string]stats.TopicStat
	diffStats  map[catalog.Difficulty]stats.DifficultyStat
	solved     map[string]bool
	recent     []stats.SolvedQuestion
	err        error
}

func (f *fakeInteractionStore) TopicStats(ctx context.Context, userID string) (map[string]stats.TopicStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]stats.TopicStat, len(f.topicStats))
	for k, v := range f.topicStats {
		out[k] = v
	}
	return out, nil
}

func (f *fakeInteractionStore) DifficultyStats(ctx context.Context, userID string) (map[catalog.Difficulty]stats.DifficultyStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[catalog.Difficulty]stats.DifficultyStat, len(f.diffStats))
	for k, v := range f.diffStats {
		out[k] = v
	}
	return out, nil
}

func (f *fakeInteractionStore) SolvedQuestionIDs(ctx context.Context, userID string) (map[string]bool, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.solved, nil
}

func (f *fakeInteractionStore) RecentlySolved(ctx context.Context, userID string, n int) ([]stats.SolvedQuestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	if n < len(f.recent) {
		return f.recent[:n], nil
	}
	return f.recent, nil
}

type fakeCatalog struct {
	questions []catalog.Question
}

func (f *fakeCatalog) AllTopics(ctx context.Context) (map[string]bool, error) {
	topics := make(map[string]bool)
	for _, q := range f.questions {
		for _, t := range q.Topics {
			topics[t] = true
		}
	}
	return topics, nil
}

func (f *fakeCatalog) AllQuestions(ctx context.Context) ([]catalog.Question, error) {
	return f.questions, nil
}

type fakeHistoryRepo struct {
	entries   map[string]map[string]history.Entry
	saveErr   error
	saveCalls int
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{entries: make(map[string]map[string]history.Entry)}
}

func (f *fakeHistoryRepo) Load(ctx context.Context, userID string) (map[string]history.Entry, error) {
	out := make(map[string]history.Entry)
	for k, v := range f.entries[userID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeHistoryRepo) Save(ctx context.Context, userID string, entries map[string]history.Entry) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries[userID] = entries
	return nil
}

// readOnlyHistoryRepo accepts saves without persisting them, so successive
// runs observe the same stored state.
type readOnlyHistoryRepo struct {
	entries map[string]history.Entry
}

func (r *readOnlyHistoryRepo) Load(ctx context.Context, userID string) (map[string]history.Entry, error) {
	out := make(map[string]history.Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out, nil
}

func (r *readOnlyHistoryRepo) Save(ctx context.Context, userID string, entries map[string]history.Entry) error {
	return nil
}

type fakeRunLog struct {
	records []RunRecord
}

func (f *fakeRunLog) AppendRun(ctx context.Context, rec RunRecord) error {
	f.records = append(f.records, rec)
	return nil
}

var engineNow = time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)

// testPool is a small catalog with a DP-heavy pool: the user below is weak
// at DP, strong on Arrays, and not yet competent at Hard.
func testPool() []catalog.Question {
	return []catalog.Question{
		{ID: "arr-one", Difficulty: catalog.Easy, Topics: []string{"Arrays"}},
		{ID: "dp-one", Difficulty: catalog.Medium, Topics: []string{"DP"}},
		{ID: "dp-two", Difficulty: catalog.Easy, Topics: []string{"DP"}},
		{ID: "hard-dp", Difficulty: catalog.Hard, Topics: []string{"DP"}},
	}
}

func testStore() *fakeInteractionStore {
	return &fakeInteractionStore{
		topicStats: map[string]stats.TopicStat{
			"DP":     {Count: 10, Solved: 2, HintsUsed: 6, WatchedExplanation: 5},
			"Arrays": {Count: 5, Solved: 5},
		},
		diffStats: map[catalog.Difficulty]stats.DifficultyStat{
			catalog.Easy:   {Attempted: 10, Solved: 8},
			catalog.Medium: {Attempted: 5, Solved: 3},
			catalog.Hard:   {Attempted: 2, Solved: 0},
		},
		solved: map[string]bool{"arr-one": true},
	}
}

func testEngine(store stats.InteractionStore, hist history.Repo, runs RunLog) *Engine {
	e := NewEngine(store, &fakeCatalog{questions: testPool()}, hist, runs)
	e.now = func() time.Time { return engineNow }
	return e
}

func TestRecommend_EndToEnd(t *testing.T) {
	hist := newFakeHistoryRepo()
	runs := &fakeRunLog{}
	e := testEngine(testStore(), hist, runs)

	result, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if result.Strategy != strategy.Improve {
		t.Errorf("strategy = %q, want improve", result.Strategy)
	}
	if result.Ceiling != catalog.Medium {
		t.Errorf("ceiling = %q, want Medium", result.Ceiling)
	}
	if result.RunID == "" {
		t.Error("missing run ID")
	}

	// hard-dp is above the ceiling, arr-one is solved: dp-one and dp-two
	// remain, tied on score and broken by ID.
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2: %+v", len(result.Recommendations), result.Recommendations)
	}
	if result.Recommendations[0].ID != "dp-one" || result.Recommendations[1].ID != "dp-two" {
		t.Errorf("recommendations = %s,%s, want dp-one,dp-two",
			result.Recommendations[0].ID, result.Recommendations[1].ID)
	}

	saved := hist.entries["alice"]
	for _, id := range []string{"dp-one", "dp-two"} {
		entry, ok := saved[id]
		if !ok {
			t.Fatalf("no history entry saved for %s", id)
		}
		if entry.TimesRecommended != 1 {
			t.Errorf("%s TimesRecommended = %d, want 1", id, entry.TimesRecommended)
		}
		if !entry.LastRecommendedAt.Equal(engineNow) {
			t.Errorf("%s LastRecommendedAt = %v, want %v", id, entry.LastRecommendedAt, engineNow)
		}
	}

	if len(runs.records) != 1 {
		t.Fatalf("got %d run records, want 1", len(runs.records))
	}
	if rec := runs.records[0]; rec.State != string(StateDone) || rec.Candidates != 2 || rec.UserID != "alice" {
		t.Errorf("unexpected run record: %+v", rec)
	}
}

func TestRecommend_RepeatBoostAppliedOnce(t *testing.T) {
	cfg := DefaultConfig()
	hist := newFakeHistoryRepo()
	hist.entries["alice"] = map[string]history.Entry{
		"dp-one": {
			LastRecommendedAt: engineNow.Add(-30 * 24 * time.Hour),
			TimesRecommended:  cfg.RepeatBoostThreshold,
		},
	}
	e := testEngine(testStore(), hist, nil)

	first, err := e.Recommend(context.Background(), "alice", cfg)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Recommendations[0].ID != "dp-one" {
		t.Fatalf("first pick = %q, want boosted dp-one", first.Recommendations[0].ID)
	}
	boostedScore := first.Recommendations[0].Score

	entry := hist.entries["alice"]["dp-one"]
	if !entry.BoostGranted {
		t.Fatal("BoostGranted not persisted after boosted run")
	}
	if entry.TimesRecommended != cfg.RepeatBoostThreshold+1 {
		t.Errorf("TimesRecommended = %d, want %d", entry.TimesRecommended, cfg.RepeatBoostThreshold+1)
	}

	second, err := e.Recommend(context.Background(), "alice", cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for _, rec := range second.Recommendations {
		if rec.ID == "dp-one" && rec.Score >= boostedScore {
			t.Errorf("dp-one scored %v on the second run, boost should not repeat (first: %v)",
				rec.Score, boostedScore)
		}
	}
	if !hist.entries["alice"]["dp-one"].BoostGranted {
		t.Error("BoostGranted lost after second run")
	}
}

func TestRecommend_EmptyResultIsNotAnError(t *testing.T) {
	store := testStore()
	store.solved = map[string]bool{
		"arr-one": true, "dp-one": true, "dp-two": true, "hard-dp": true,
	}
	hist := newFakeHistoryRepo()
	e := testEngine(store, hist, nil)

	result, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %+v", result.Recommendations)
	}
	if hist.saveCalls != 0 {
		t.Errorf("history saved %d times on an empty run, want 0", hist.saveCalls)
	}
}

func TestRecommend_StoreUnavailableAborts(t *testing.T) {
	store := testStore()
	store.err = &graph.ErrStoreUnavailable{Op: "topic stats"}
	runs := &fakeRunLog{}
	e := testEngine(store, newFakeHistoryRepo(), runs)

	result, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
	var unavailable *graph.ErrStoreUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	if len(runs.records) != 1 {
		t.Fatalf("got %d run records, want 1", len(runs.records))
	}
	if runs.records[0].State != string(StateFailed) || runs.records[0].Error == "" {
		t.Errorf("unexpected failure record: %+v", runs.records[0])
	}
}

func TestRecommend_HistorySaveFailureKeepsResult(t *testing.T) {
	hist := newFakeHistoryRepo()
	hist.saveErr = errors.New("disk full")
	e := testEngine(testStore(), hist, nil)

	result, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	var persistErr *ErrHistoryPersistence
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected ErrHistoryPersistence, got %v", err)
	}
	if result == nil || len(result.Recommendations) == 0 {
		t.Error("recommendations should survive a history write failure")
	}
}

func TestRecommend_InvalidConfigRejected(t *testing.T) {
	e := testEngine(testStore(), newFakeHistoryRepo(), nil)
	cfg := DefaultConfig()
	cfg.TopK = 0

	if _, err := e.Recommend(context.Background(), "alice", cfg); err == nil {
		t.Error("expected config validation error")
	}
}

func TestRecommend_SameInputsSameOutput(t *testing.T) {
	// With unchanged interaction data and history, repeated runs must rank
	// identically; only the run ID may differ. Seeded history exercises the
	// recency penalty on both runs.
	repo := &readOnlyHistoryRepo{entries: map[string]history.Entry{
		"dp-two": {LastRecommendedAt: engineNow.Add(-24 * time.Hour), TimesRecommended: 1},
	}}
	e := testEngine(testStore(), repo, nil)

	first, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := e.Recommend(context.Background(), "alice", DefaultConfig())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.Strategy != second.Strategy {
		t.Errorf("strategy changed between runs: %q then %q", first.Strategy, second.Strategy)
	}
	if !reflect.DeepEqual(first.RankedTopics, second.RankedTopics) {
		t.Errorf("ranked topics changed: %v then %v", first.RankedTopics, second.RankedTopics)
	}
	if !reflect.DeepEqual(first.Recommendations, second.Recommendations) {
		t.Errorf("recommendations changed:\n%+v\nthen\n%+v", first.Recommendations, second.Recommendations)
	}
	if first.Ceiling != second.Ceiling {
		t.Errorf("ceiling changed: %q then %q", first.Ceiling, second.Ceiling)
	}
}

func TestRecommend_RunIDsAreUnique(t *testing.T) {
	e := testEngine(testStore(), newFakeHistoryRepo(), nil)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		result, err := e.Recommend(context.Background(), "alice", DefaultConfig())
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if seen[result.RunID] {
			t.Fatalf("run ID %q repeated", result.RunID)
		}
		seen[result.RunID] = true
	}
}
