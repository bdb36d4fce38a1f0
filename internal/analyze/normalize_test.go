package analyze

import (
	"testing"

	"github.com/abhisek/leetcoach/internal/stats"
)

func TestNormalize_ZeroCount(t *testing.T) {
	m := Normalize(stats.TopicStat{})
	if m.Accuracy != 0 || m.HintUsageRate != 0 || m.ExplanationWatchRate != 0 {
		t.Errorf("zero-count metrics = %+v, want all zero", m)
	}
}

func TestNormalize_TypicalCounts(t *testing.T) {
	// 10 attempts, 5 solved, 3 hints, 1 explanation.
	m := Normalize(stats.TopicStat{Count: 10, Solved: 5, HintsUsed: 3, WatchedExplanation: 1})
	if m.Accuracy != 50.0 {
		t.Errorf("Accuracy = %v, want 50.0", m.Accuracy)
	}
	if m.HintUsageRate != 30.0 {
		t.Errorf("HintUsageRate = %v, want 30.0", m.HintUsageRate)
	}
	if m.ExplanationWatchRate != 10.0 {
		t.Errorf("ExplanationWatchRate = %v, want 10.0", m.ExplanationWatchRate)
	}
}

func TestNormalize_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name string
		stat stats.TopicStat
		want float64
	}{
		{"one third", stats.TopicStat{Count: 3, Solved: 1}, 33.33},
		{"two thirds", stats.TopicStat{Count: 3, Solved: 2}, 66.67},
		{"one twelfth", stats.TopicStat{Count: 12, Solved: 1}, 8.33},
		{"exact half", stats.TopicStat{Count: 2, Solved: 1}, 50.0},
		{"one eighth", stats.TopicStat{Count: 8, Solved: 1}, 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.stat).Accuracy; got != tt.want {
				t.Errorf("Accuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_FullCounts(t *testing.T) {
	m := Normalize(stats.TopicStat{Count: 4, Solved: 4, HintsUsed: 4, WatchedExplanation: 4})
	if m.Accuracy != 100.0 || m.HintUsageRate != 100.0 || m.ExplanationWatchRate != 100.0 {
		t.Errorf("full-count metrics = %+v, want all 100", m)
	}
}

func TestNormalizeAll(t *testing.T) {
	metrics := NormalizeAll(map[string]stats.TopicStat{
		"Arrays": {Count: 2, Solved: 1},
		"Graphs": {},
	})
	if len(metrics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(metrics))
	}
	if metrics["Arrays"].Accuracy != 50.0 {
		t.Errorf("Arrays accuracy = %v, want 50.0", metrics["Arrays"].Accuracy)
	}
	if metrics["Graphs"].Accuracy != 0 {
		t.Errorf("Graphs accuracy = %v, want 0", metrics["Graphs"].Accuracy)
	}
}
