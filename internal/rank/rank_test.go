package rank

import (
	"math"
	"testing"

	"github.com/abhisek/leetcoach/internal/analyze"
)

func TestWeakTopics_SortedDescending(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{
		"Arrays": {Accuracy: 90, HintUsageRate: 5, ExplanationWatchRate: 0},
		"Graphs": {Accuracy: 20, HintUsageRate: 60, ExplanationWatchRate: 40},
		"DP":     {Accuracy: 50, HintUsageRate: 30, ExplanationWatchRate: 10},
	}
	ranked := WeakTopics(metrics, DefaultWeights(), 5)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("ranking not non-increasing at %d: %v then %v", i, ranked[i-1], ranked[i])
		}
	}
	if ranked[0].Topic != "Graphs" {
		t.Errorf("weakest topic = %q, want Graphs", ranked[0].Topic)
	}
}

func TestWeakTopics_LengthIsMinTopKAndTopics(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{
		"A": {}, "B": {}, "C": {},
	}
	if got := len(WeakTopics(metrics, DefaultWeights(), 2)); got != 2 {
		t.Errorf("topK=2 returned %d topics", got)
	}
	if got := len(WeakTopics(metrics, DefaultWeights(), 10)); got != 3 {
		t.Errorf("topK=10 returned %d topics, want 3", got)
	}
}

func TestWeakTopics_TiesBreakByName(t *testing.T) {
	metrics := map[string]analyze.TopicMetrics{
		"Zeta":  {},
		"Alpha": {},
		"Mid":   {},
	}
	ranked := WeakTopics(metrics, DefaultWeights(), 3)
	if ranked[0].Topic != "Alpha" || ranked[1].Topic != "Mid" || ranked[2].Topic != "Zeta" {
		t.Errorf("tie order = %v, want alphabetical", ranked)
	}
}

func TestWeakTopics_ZeroCountTopicScoresBaseline(t *testing.T) {
	// A never-attempted topic has all-zero metrics, so its score is the
	// accuracy weight alone: 0.5*1 + 0.2*0 + 0.2*0 = 0.5. It must not score
	// as maximally weak.
	ranked := WeakTopics(map[string]analyze.TopicMetrics{"Fresh": {}}, DefaultWeights(), 1)
	if math.Abs(ranked[0].Score-0.5) > 1e-9 {
		t.Errorf("zero-count weakness score = %v, want 0.5", ranked[0].Score)
	}

	// A genuinely weak topic outranks it.
	weak := analyze.TopicMetrics{Accuracy: 0, HintUsageRate: 100, ExplanationWatchRate: 100}
	ranked = WeakTopics(map[string]analyze.TopicMetrics{"Fresh": {}, "Weak": weak}, DefaultWeights(), 2)
	if ranked[0].Topic != "Weak" {
		t.Errorf("expected Weak to outrank Fresh, got %v", ranked)
	}
}

func TestExplorationTopics_AscendingByCount(t *testing.T) {
	counts := map[string]int{"A": 10, "B": 0, "C": 3, "D": 7}
	ranked := ExplorationTopics(counts, 3)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Count > ranked[i].Count {
			t.Errorf("ranking not non-decreasing at %d: %v then %v", i, ranked[i-1], ranked[i])
		}
	}
	if ranked[0].Topic != "B" {
		t.Errorf("least explored = %q, want B", ranked[0].Topic)
	}
}

func TestExplorationTopics_NeverSkipsLowerCount(t *testing.T) {
	// No excluded topic may have a lower count than an included one.
	counts := map[string]int{"A": 5, "B": 1, "C": 9, "D": 2, "E": 4}
	ranked := ExplorationTopics(counts, 2)

	included := make(map[string]int)
	maxIncluded := 0
	for _, tc := range ranked {
		included[tc.Topic] = tc.Count
		if tc.Count > maxIncluded {
			maxIncluded = tc.Count
		}
	}
	for topic, count := range counts {
		if _, ok := included[topic]; !ok && count < maxIncluded {
			t.Errorf("excluded %q (count %d) despite included count %d", topic, count, maxIncluded)
		}
	}
}

func TestExplorationTopics_TiesBreakByName(t *testing.T) {
	counts := map[string]int{"Zeta": 0, "Alpha": 0}
	ranked := ExplorationTopics(counts, 2)
	if ranked[0].Topic != "Alpha" {
		t.Errorf("tie order = %v, want Alpha first", ranked)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if err := (Weights{Accuracy: -0.1}).Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
	if err := (Weights{Accuracy: 0.5, Hints: 0.4, Explanation: 0.2}).Validate(); err == nil {
		t.Error("expected error for weights summing over 1")
	}
	// Weights need not sum to exactly 1.
	if err := (Weights{Accuracy: 0.3, Hints: 0.1, Explanation: 0.1}).Validate(); err != nil {
		t.Errorf("partial weights should be valid: %v", err)
	}
}
