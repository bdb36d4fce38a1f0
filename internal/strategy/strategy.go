package strategy

import (
	"github.com/abhisek/leetcoach/internal/analyze"
	"github.com/abhisek/leetcoach/internal/rank"
	"github.com/abhisek/leetcoach/internal/stats"
)

// Decision is the binary outcome of strategy selection.
type Decision string

const (
	// Improve remediates the user's weakest topics.
	Improve Decision = "improve"
	// Exploration surfaces topics the user has barely touched.
	Exploration Decision = "exploration"
)

// Config holds the selection thresholds. These are policy knobs rather than
// verified constants; the contract only fixes the two legal outputs and
// determinism for identical inputs.
type Config struct {
	// WeaknessFloor is the mean weakness score below which the user is
	// considered to have no pressing weak topics.
	WeaknessFloor float64

	// ConcentrationMax is the largest number of distinct topics in the
	// recent-solve history still counting as "concentrated" activity.
	ConcentrationMax int
}

// DefaultConfig returns the standard selection thresholds.
func DefaultConfig() Config {
	return Config{
		WeaknessFloor:    0.35,
		ConcentrationMax: 2,
	}
}

// Select decides between remediation and exploration.
//
// A pure weakness ranking risks tunnel-visioning the user into the same few
// weak topics, so this acts as a coarse outer control loop: when the
// aggregate weakness signal is low and recent solves cluster in few topics,
// it redirects toward breadth. Deterministic for identical inputs.
func Select(metrics map[string]analyze.TopicMetrics, counts map[string]int, recent []stats.SolvedQuestion, weights rank.Weights, cfg Config) Decision {
	mean := meanWeakness(metrics, counts, weights)
	distinct := distinctRecentTopics(recent)

	if mean < cfg.WeaknessFloor && distinct > 0 && distinct <= cfg.ConcentrationMax {
		return Exploration
	}
	return Improve
}

// meanWeakness averages the weakness score over attempted topics only.
// Never-attempted topics score a flat baseline from their zero metrics and
// would drown out the real signal if included.
func meanWeakness(metrics map[string]analyze.TopicMetrics, counts map[string]int, weights rank.Weights) float64 {
	var sum float64
	var n int
	for topic, m := range metrics {
		if counts[topic] == 0 {
			continue
		}
		sum += weights.Score(m)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func distinctRecentTopics(recent []stats.SolvedQuestion) int {
	seen := make(map[string]bool)
	for _, sq := range recent {
		for _, t := range sq.Topics {
			seen[t] = true
		}
	}
	return len(seen)
}
