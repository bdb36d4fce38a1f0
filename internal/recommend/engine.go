package recommend

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/leetcoach/internal/analyze"
	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/history"
	"github.com/abhisek/leetcoach/internal/rank"
	"github.com/abhisek/leetcoach/internal/stats"
	"github.com/abhisek/leetcoach/internal/strategy"
)

// State tracks pipeline progress for one run. The run is linear with no
// retries: Failed is reachable from any state and nothing resumes from it.
type State string

const (
	StateIdle              State = "idle"
	StateAggregating       State = "aggregating"
	StateNormalizing       State = "normalizing"
	StateSelectingStrategy State = "selecting-strategy"
	StateRanking           State = "ranking"
	StateFiltering         State = "filtering"
	StateScoring           State = "scoring"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// Recommendation is one entry of the final ranked output.
type Recommendation struct {
	ID         string
	Topics     []string
	Difficulty catalog.Difficulty
	Score      float64
}

// Result is the outcome of one recommendation run.
type Result struct {
	RunID           string
	Strategy        strategy.Decision
	RankedTopics    []string
	Ceiling         catalog.Difficulty
	Recommendations []Recommendation
}

// RunRecord is the audit entry appended to the run event log after every
// run, successful or not.
type RunRecord struct {
	RunID      string
	UserID     string
	Strategy   string
	State      string
	Candidates int
	Error      string
}

// RunLog appends run audit records. Implementations must not fail the run.
type RunLog interface {
	AppendRun(ctx context.Context, rec RunRecord) error
}

// Engine wires the pipeline stages over the external collaborators. One
// Engine serves many users; runs for the same user serialize on the history
// locker while runs for different users proceed independently.
type Engine struct {
	aggregator *stats.Aggregator
	catalog    catalog.Repo
	history    history.Repo
	locker     *history.Locker
	runs       RunLog

	// now is swappable for tests.
	now func() time.Time
}

// NewEngine creates an Engine. runs may be nil to disable run logging.
func NewEngine(store stats.InteractionStore, cat catalog.Repo, hist history.Repo, runs RunLog) *Engine {
	return &Engine{
		aggregator: stats.NewAggregator(store, cat),
		catalog:    cat,
		history:    hist,
		locker:     history.NewLocker(),
		runs:       runs,
		now:        time.Now,
	}
}

// Recommend runs the full pipeline for one user and returns the top-N
// recommendations.
//
// An empty recommendation list is a legitimate result, not an error. When
// the computation succeeds but the history write fails, the recommendations
// are returned together with *ErrHistoryPersistence so the caller can keep
// the result and report the bookkeeping failure separately.
func (e *Engine) Recommend(ctx context.Context, userID string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend config: %w", err)
	}

	runID := uuid.NewString()
	state := StateIdle
	result := &Result{RunID: runID}

	fail := func(err error) (*Result, error) {
		e.logRun(ctx, RunRecord{
			RunID:    runID,
			UserID:   userID,
			Strategy: string(result.Strategy),
			State:    string(StateFailed),
			Error:    fmt.Sprintf("%s: %v", state, err),
		})
		return nil, err
	}

	// History is read during scoring and written after completion; the whole
	// read-modify-write is a critical section per user.
	e.locker.Lock(userID)
	defer e.locker.Unlock(userID)

	state = StateAggregating
	summary, err := e.aggregator.Collect(ctx, userID, cfg.RecentSolveN)
	if err != nil {
		return fail(err)
	}

	state = StateNormalizing
	metrics := analyze.NormalizeAll(summary.TopicStats)
	counts := summary.AttemptCounts()

	state = StateSelectingStrategy
	result.Strategy = strategy.Select(metrics, counts, summary.RecentlySolved, cfg.Weights, cfg.Strategy)

	state = StateRanking
	switch result.Strategy {
	case strategy.Exploration:
		for _, tc := range rank.ExplorationTopics(counts, cfg.TopK) {
			result.RankedTopics = append(result.RankedTopics, tc.Topic)
		}
	default:
		for _, ws := range rank.WeakTopics(metrics, cfg.Weights, cfg.TopK) {
			result.RankedTopics = append(result.RankedTopics, ws.Topic)
		}
	}

	state = StateFiltering
	catalogTopics, err := e.catalog.AllTopics(ctx)
	if err != nil {
		return fail(fmt.Errorf("catalog topics: %w", err))
	}
	candidates, err := FilterByTopics(summary.Unsolved, result.RankedTopics, catalogTopics)
	if err != nil {
		return fail(err)
	}

	state = StateScoring
	entries, err := e.history.Load(ctx, userID)
	if err != nil {
		return fail(fmt.Errorf("load history for %s: %w", userID, err))
	}
	result.Ceiling = DifficultyCeiling(summary.DifficultyStats, cfg.CompetenceThreshold)
	scored := ScoreCandidates(candidates, result.RankedTopics, result.Ceiling, entries, e.now(), cfg)

	for _, c := range scored {
		result.Recommendations = append(result.Recommendations, Recommendation{
			ID:         c.Question.ID,
			Topics:     c.Question.Topics,
			Difficulty: c.Question.Difficulty,
			Score:      c.Score,
		})
	}

	state = StateDone
	e.logRun(ctx, RunRecord{
		RunID:      runID,
		UserID:     userID,
		Strategy:   string(result.Strategy),
		State:      string(state),
		Candidates: len(result.Recommendations),
	})

	// Refresh fatigue state only for questions actually recommended.
	if len(scored) > 0 {
		now := e.now()
		for _, c := range scored {
			entry := entries[c.Question.ID]
			entry.LastRecommendedAt = now
			entry.TimesRecommended++
			if c.Boosted {
				entry.BoostGranted = true
			}
			entries[c.Question.ID] = entry
		}
		if err := e.history.Save(ctx, userID, entries); err != nil {
			return result, &ErrHistoryPersistence{Err: err}
		}
	}

	return result, nil
}

// logRun appends a run audit record; failures warn on stderr and never
// affect the run outcome.
func (e *Engine) logRun(ctx context.Context, rec RunRecord) {
	if e.runs == nil {
		return
	}
	if err := e.runs.AppendRun(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log recommendation run: %v\n", err)
	}
}
