package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/history"
)

var scoreNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return scoreNow.Add(-time.Duration(d) * 24 * time.Hour)
}

func TestScoreCandidates_CeilingIsHardConstraint(t *testing.T) {
	pool := []catalog.Question{
		{ID: "easy-dp", Difficulty: catalog.Easy, Topics: []string{"DP"}},
		{ID: "med-dp", Difficulty: catalog.Medium, Topics: []string{"DP"}},
		{ID: "hard-dp", Difficulty: catalog.Hard, Topics: []string{"DP"}},
	}

	scored := ScoreCandidates(pool, []string{"DP"}, catalog.Medium, nil, scoreNow, DefaultConfig())
	for _, c := range scored {
		if c.Question.ID == "hard-dp" {
			t.Fatal("question above the difficulty ceiling was scored")
		}
	}
	if len(scored) != 2 {
		t.Errorf("expected 2 candidates within ceiling, got %d", len(scored))
	}
}

func TestScoreCandidates_ScoreMonotonicInOverlap(t *testing.T) {
	pool := []catalog.Question{
		{ID: "one", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "two", Difficulty: catalog.Easy, Topics: []string{"A", "B"}},
		{ID: "three", Difficulty: catalog.Easy, Topics: []string{"A", "B", "C"}},
	}

	scored := ScoreCandidates(pool, []string{"A", "B", "C"}, catalog.Hard, nil, scoreNow, DefaultConfig())
	if len(scored) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(scored))
	}
	if scored[0].Question.ID != "three" || scored[1].Question.ID != "two" || scored[2].Question.ID != "one" {
		t.Errorf("order = %s,%s,%s, want three,two,one",
			scored[0].Question.ID, scored[1].Question.ID, scored[2].Question.ID)
	}
	want := []float64{1.0, 2.0 / 3.0, 1.0 / 3.0}
	for i, w := range want {
		if math.Abs(scored[i].Score-w) > 1e-9 {
			t.Errorf("score[%d] = %v, want %v", i, scored[i].Score, w)
		}
	}
}

func TestScoreCandidates_RecencyPenalty(t *testing.T) {
	cfg := DefaultConfig()
	pool := []catalog.Question{
		{ID: "q", Difficulty: catalog.Easy, Topics: []string{"A"}},
	}

	// Recommended yesterday with weak overlap: penalized.
	hist := map[string]history.Entry{"q": {LastRecommendedAt: daysAgo(1), TimesRecommended: 1}}
	scored := ScoreCandidates(pool, []string{"A", "B"}, catalog.Hard, hist, scoreNow, cfg)
	if want := 0.5 - cfg.RecencyPenalty; math.Abs(scored[0].Score-want) > 1e-9 {
		t.Errorf("penalized score = %v, want %v", scored[0].Score, want)
	}

	// Recommended outside the window: untouched.
	hist = map[string]history.Entry{"q": {LastRecommendedAt: daysAgo(cfg.RecencyWindowDays + 2), TimesRecommended: 1}}
	scored = ScoreCandidates(pool, []string{"A", "B"}, catalog.Hard, hist, scoreNow, cfg)
	if math.Abs(scored[0].Score-0.5) > 1e-9 {
		t.Errorf("stale-history score = %v, want 0.5", scored[0].Score)
	}
}

func TestScoreCandidates_StrongOverlapOverridesRecency(t *testing.T) {
	cfg := DefaultConfig()
	pool := []catalog.Question{
		{ID: "q", Difficulty: catalog.Easy, Topics: []string{"A", "B"}},
	}
	hist := map[string]history.Entry{"q": {LastRecommendedAt: daysAgo(1), TimesRecommended: 1}}

	scored := ScoreCandidates(pool, []string{"A", "B"}, catalog.Hard, hist, scoreNow, cfg)
	if math.Abs(scored[0].Score-1.0) > 1e-9 {
		t.Errorf("score = %v, want 1.0 with penalty overridden", scored[0].Score)
	}
}

func TestScoreCandidates_RepeatBoost(t *testing.T) {
	cfg := DefaultConfig()
	pool := []catalog.Question{
		{ID: "q", Difficulty: catalog.Easy, Topics: []string{"A"}},
	}
	base := 1.0 // single ranked topic, full overlap

	tests := []struct {
		name    string
		entry   history.Entry
		boosted bool
	}{
		{"below threshold", history.Entry{TimesRecommended: cfg.RepeatBoostThreshold - 1}, false},
		{"at threshold", history.Entry{TimesRecommended: cfg.RepeatBoostThreshold}, true},
		{"already granted", history.Entry{TimesRecommended: cfg.RepeatBoostThreshold, BoostGranted: true}, false},
		{"avoidance", history.Entry{TimesRecommended: cfg.RepeatBoostThreshold * 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.LastRecommendedAt = daysAgo(cfg.RecencyWindowDays + 1)
			hist := map[string]history.Entry{"q": tt.entry}

			scored := ScoreCandidates(pool, []string{"A"}, catalog.Hard, hist, scoreNow, cfg)
			want := base
			if tt.boosted {
				want += cfg.RepeatBoost
			}
			if math.Abs(scored[0].Score-want) > 1e-9 {
				t.Errorf("score = %v, want %v", scored[0].Score, want)
			}
			if scored[0].Boosted != tt.boosted {
				t.Errorf("Boosted = %v, want %v", scored[0].Boosted, tt.boosted)
			}
		})
	}
}

func TestScoreCandidates_TieBreaks(t *testing.T) {
	pool := []catalog.Question{
		{ID: "b-question", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "a-question", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "c-question", Difficulty: catalog.Easy, Topics: []string{"A"}},
	}
	// Equal scores: c-question was recommended least, then IDs break the rest.
	hist := map[string]history.Entry{
		"a-question": {LastRecommendedAt: daysAgo(30), TimesRecommended: 2},
		"b-question": {LastRecommendedAt: daysAgo(30), TimesRecommended: 2},
		"c-question": {LastRecommendedAt: daysAgo(30), TimesRecommended: 1},
	}

	scored := ScoreCandidates(pool, []string{"A"}, catalog.Hard, hist, scoreNow, DefaultConfig())
	got := []string{scored[0].Question.ID, scored[1].Question.ID, scored[2].Question.ID}
	want := []string{"c-question", "a-question", "b-question"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestScoreCandidates_CapsAtCandidateN(t *testing.T) {
	pool := []catalog.Question{
		{ID: "q1", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "q2", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "q3", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "q4", Difficulty: catalog.Easy, Topics: []string{"A"}},
		{ID: "q5", Difficulty: catalog.Easy, Topics: []string{"A"}},
	}
	cfg := DefaultConfig()

	scored := ScoreCandidates(pool, []string{"A"}, catalog.Hard, nil, scoreNow, cfg)
	if len(scored) != cfg.CandidateN {
		t.Errorf("returned %d candidates, want %d", len(scored), cfg.CandidateN)
	}
}
