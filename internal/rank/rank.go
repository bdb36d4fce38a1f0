package rank

import (
	"fmt"
	"sort"

	"github.com/abhisek/leetcoach/internal/analyze"
)

// Weights control how the three normalized metrics combine into a weakness
// score. They must each be non-negative and sum to at most 1; they are not
// required to sum to exactly 1.
type Weights struct {
	Accuracy    float64
	Hints       float64
	Explanation float64
}

// DefaultWeights returns the standard weakness weighting.
func DefaultWeights() Weights {
	return Weights{Accuracy: 0.5, Hints: 0.2, Explanation: 0.2}
}

// Validate checks the weight constraints.
func (w Weights) Validate() error {
	if w.Accuracy < 0 || w.Hints < 0 || w.Explanation < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	if sum := w.Accuracy + w.Hints + w.Explanation; sum > 1 {
		return fmt.Errorf("weights sum to %.2f, must be <= 1", sum)
	}
	return nil
}

// WeaknessScore pairs a topic with its combined weakness score.
// Higher means weaker.
type WeaknessScore struct {
	Topic string
	Score float64
}

// Score computes the weakness score for one topic's metrics: low accuracy,
// high hint reliance and high explanation reliance all push it up.
func (w Weights) Score(m analyze.TopicMetrics) float64 {
	return w.Accuracy*(1-m.Accuracy/100) +
		w.Hints*m.HintUsageRate/100 +
		w.Explanation*m.ExplanationWatchRate/100
}

// WeakTopics ranks all topics descending by weakness score and returns the
// top topK. Equal scores order by topic name so the ranking is stable across
// runs.
func WeakTopics(metrics map[string]analyze.TopicMetrics, weights Weights, topK int) []WeaknessScore {
	scored := make([]WeaknessScore, 0, len(metrics))
	for topic, m := range metrics {
		scored = append(scored, WeaknessScore{Topic: topic, Score: weights.Score(m)})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Topic < scored[j].Topic
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

// TopicCount pairs a topic with its attempt count.
type TopicCount struct {
	Topic string
	Count int
}

// ExplorationTopics ranks topics ascending by attempt count (least explored
// first) and returns the bottom topK. Ties order by topic name. Zero-count
// topics participate like any other.
func ExplorationTopics(counts map[string]int, topK int) []TopicCount {
	ranked := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		ranked = append(ranked, TopicCount{Topic: topic, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count < ranked[j].Count
		}
		return ranked[i].Topic < ranked[j].Topic
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}
