package analyze

import (
	"math"

	"github.com/abhisek/leetcoach/internal/stats"
)

// TopicMetrics are the normalized performance percentages for one topic.
// Each value is in [0,100], rounded to two decimal places.
type TopicMetrics struct {
	Accuracy             float64
	HintUsageRate        float64
	ExplanationWatchRate float64
}

// Normalize converts raw topic counters into bounded percentage metrics.
// A topic with zero attempts yields all-zero metrics: never-attempted topics
// are neither weak nor strong by these metrics alone, and exploration
// ranking uses the attempt count separately.
func Normalize(ts stats.TopicStat) TopicMetrics {
	if ts.Count == 0 {
		return TopicMetrics{}
	}
	n := float64(ts.Count)
	return TopicMetrics{
		Accuracy:             roundPercent(float64(ts.Solved) / n * 100),
		HintUsageRate:        roundPercent(float64(ts.HintsUsed) / n * 100),
		ExplanationWatchRate: roundPercent(float64(ts.WatchedExplanation) / n * 100),
	}
}

// NormalizeAll normalizes every topic in the map.
func NormalizeAll(topicStats map[string]stats.TopicStat) map[string]TopicMetrics {
	metrics := make(map[string]TopicMetrics, len(topicStats))
	for topic, ts := range topicStats {
		metrics[topic] = Normalize(ts)
	}
	return metrics
}

// roundPercent rounds to two decimals with half-up behavior.
func roundPercent(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
