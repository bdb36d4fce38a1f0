package strategy

import (
	"testing"
	"time"

	"github.com/abhisek/leetcoach/internal/analyze"
	"github.com/abhisek/leetcoach/internal/rank"
	"github.com/abhisek/leetcoach/internal/stats"
)

func solvedIn(topics ...string) stats.SolvedQuestion {
	return stats.SolvedQuestion{
		QuestionID: "q",
		Topics:     topics,
		SolvedAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSelect_ExplorationWhenStrongAndConcentrated(t *testing.T) {
	// High accuracy, no hint reliance: mean weakness well under the floor.
	metrics := map[string]analyze.TopicMetrics{
		"Arrays":  {Accuracy: 95},
		"Strings": {Accuracy: 90},
	}
	counts := map[string]int{"Arrays": 10, "Strings": 8}
	recent := []stats.SolvedQuestion{
		solvedIn("Arrays"), solvedIn("Arrays"), solvedIn("Strings"), solvedIn("Arrays"),
	}

	got := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig())
	if got != Exploration {
		t.Errorf("Select = %q, want exploration", got)
	}
}

func TestSelect_ImproveWhenWeak(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{
		"DP": {Accuracy: 20, HintUsageRate: 60, ExplanationWatchRate: 50},
	}
	counts := map[string]int{"DP": 10}
	recent := []stats.SolvedQuestion{solvedIn("DP")}

	got := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig())
	if got != Improve {
		t.Errorf("Select = %q, want improve", got)
	}
}

func TestSelect_ImproveWhenRecentActivitySpread(t *testing.T) {
	// Strong performance but recent solves already span many topics:
	// no need to redirect toward breadth.
	metrics := map[string]analyze.TopicMetrics{
		"Arrays": {Accuracy: 95}, "Trees": {Accuracy: 92}, "Graphs": {Accuracy: 90},
	}
	counts := map[string]int{"Arrays": 5, "Trees": 5, "Graphs": 5}
	recent := []stats.SolvedQuestion{
		solvedIn("Arrays"), solvedIn("Trees"), solvedIn("Graphs"),
	}

	got := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig())
	if got != Improve {
		t.Errorf("Select = %q, want improve when activity is spread", got)
	}
}

func TestSelect_ImproveWhenNoRecentSolves(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{"Arrays": {Accuracy: 95}}
	counts := map[string]int{"Arrays": 10}

	got := Select(metrics, counts, nil, rank.DefaultWeights(), DefaultConfig())
	if got != Improve {
		t.Errorf("Select = %q, want improve with no recent history", got)
	}
}

func TestSelect_IgnoresNeverAttemptedTopicsInMean(t *testing.T) {
	// Dozens of zero-count catalog topics must not drag the mean weakness
	// toward the 0.5 baseline.
	metrics := map[string]analyze.TopicMetrics{"Arrays": {Accuracy: 95}}
	counts := map[string]int{"Arrays": 10}
	for _, fresh := range []string{"A", "B", "C", "D", "E"} {
		metrics[fresh] = analyze.TopicMetrics{}
		counts[fresh] = 0
	}
	recent := []stats.SolvedQuestion{solvedIn("Arrays"), solvedIn("Arrays")}

	got := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig())
	if got != Exploration {
		t.Errorf("Select = %q, want exploration; zero-count topics should not inflate weakness", got)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{
		"Arrays": {Accuracy: 80, HintUsageRate: 10},
		"DP":     {Accuracy: 40, HintUsageRate: 50},
	}
	counts := map[string]int{"Arrays": 6, "DP": 4}
	recent := []stats.SolvedQuestion{solvedIn("Arrays"), solvedIn("DP")}

	first := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig())
	for i := 0; i < 10; i++ {
		if got := Select(metrics, counts, recent, rank.DefaultWeights(), DefaultConfig()); got != first {
			t.Fatalf("Select flapped: %q then %q", first, got)
		}
	}
}
