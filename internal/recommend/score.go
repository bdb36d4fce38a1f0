package recommend

import (
	"sort"
	"time"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/history"
)

// Candidate is one scored question.
type Candidate struct {
	Question catalog.Question
	Score    float64

	// Boosted marks that this run applied the one-time repeat boost, so the
	// engine can persist BoostGranted after a successful run.
	Boosted bool

	timesRecommended int
	overlap          int
}

// ScoreCandidates ranks filtered candidates by topic-match weight adjusted
// for recommendation fatigue, and returns the top cfg.CandidateN.
//
// Candidates strictly harder than ceiling have already conflicted with a
// hard constraint and are excluded outright, never merely penalized.
func ScoreCandidates(candidates []catalog.Question, rankedTopics []string, ceiling catalog.Difficulty, hist map[string]history.Entry, now time.Time, cfg Config) []Candidate {
	ranked := make(map[string]bool, len(rankedTopics))
	for _, t := range rankedTopics {
		ranked[t] = true
	}
	window := time.Duration(cfg.RecencyWindowDays) * 24 * time.Hour

	scored := make([]Candidate, 0, len(candidates))
	for _, q := range candidates {
		if q.Difficulty.HarderThan(ceiling) {
			continue
		}

		overlap := 0
		for _, t := range q.Topics {
			if ranked[t] {
				overlap++
			}
		}

		c := Candidate{
			Question: q,
			Score:    matchWeight(overlap, len(rankedTopics)),
			overlap:  overlap,
		}

		if entry, ok := hist[q.ID]; ok {
			c.timesRecommended = entry.TimesRecommended

			if window > 0 && now.Sub(entry.LastRecommendedAt) <= window && overlap < cfg.OverlapOverride {
				c.Score -= cfg.RecencyPenalty
			}

			if boostEligible(entry, cfg) {
				c.Score += cfg.RepeatBoost
				c.Boosted = true
			}
		}

		scored = append(scored, c)
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].timesRecommended != scored[j].timesRecommended {
			return scored[i].timesRecommended < scored[j].timesRecommended
		}
		return scored[i].Question.ID < scored[j].Question.ID
	})

	if cfg.CandidateN < len(scored) {
		scored = scored[:cfg.CandidateN]
	}
	return scored
}

// matchWeight converts ranked-topic overlap into the base score, monotonic
// in the overlap count.
func matchWeight(overlap, rankedCount int) float64 {
	if rankedCount == 0 {
		return 0
	}
	return float64(overlap) / float64(rankedCount)
}

// boostEligible applies the "give it one more push" rule: a question
// recommended at least RepeatBoostThreshold times without being solved earns
// a single compensating boost. The boost is one-time (BoostGranted persists
// across runs), and it is suppressed once the recommendation count reaches
// twice the threshold, at which point the user is treated as actively
// avoiding the question.
func boostEligible(entry history.Entry, cfg Config) bool {
	if entry.BoostGranted {
		return false
	}
	if entry.TimesRecommended < cfg.RepeatBoostThreshold {
		return false
	}
	return entry.TimesRecommended < cfg.RepeatBoostThreshold*2
}
