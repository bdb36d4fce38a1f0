package recommend

import (
	"fmt"

	"github.com/abhisek/leetcoach/internal/rank"
	"github.com/abhisek/leetcoach/internal/strategy"
)

// Config holds every tunable of the recommendation pipeline.
type Config struct {
	// Weights combine the normalized metrics into weakness scores.
	Weights rank.Weights

	// TopK is how many ranked topics feed the candidate filter. Default: 5.
	TopK int

	// CandidateN is how many recommendations to return. Default: 3.
	CandidateN int

	// CompetenceThreshold is the minimum solve ratio at a difficulty level
	// for the user to be considered competent there. Default: 0.5.
	CompetenceThreshold float64

	// RecencyWindowDays penalizes questions recommended within this many
	// days, unless their topic overlap overrides. Default: 7.
	RecencyWindowDays int

	// RepeatBoostThreshold is the recommendation count at which an unsolved
	// question earns its one-time compensating boost. Default: 3.
	RepeatBoostThreshold int

	// RecencyPenalty is subtracted from recently recommended candidates.
	RecencyPenalty float64

	// RepeatBoost is added once to boost-eligible candidates.
	RepeatBoost float64

	// OverlapOverride is the ranked-topic overlap at which a candidate's
	// match is strong enough to ignore the recency penalty. Default: 2.
	OverlapOverride int

	// RecentSolveN bounds the recent-solve history consulted by strategy
	// selection. Default: 4.
	RecentSolveN int

	// Strategy holds the strategy-selection thresholds.
	Strategy strategy.Config
}

// DefaultConfig returns the documented pipeline defaults.
func DefaultConfig() Config {
	return Config{
		Weights:              rank.DefaultWeights(),
		TopK:                 5,
		CandidateN:           3,
		CompetenceThreshold:  0.5,
		RecencyWindowDays:    7,
		RepeatBoostThreshold: 3,
		RecencyPenalty:       0.3,
		RepeatBoost:          0.25,
		OverlapOverride:      2,
		RecentSolveN:         4,
		Strategy:             strategy.DefaultConfig(),
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.TopK <= 0 {
		return fmt.Errorf("topK must be positive, got %d", c.TopK)
	}
	if c.CandidateN <= 0 {
		return fmt.Errorf("candidateN must be positive, got %d", c.CandidateN)
	}
	if c.CompetenceThreshold < 0 || c.CompetenceThreshold > 1 {
		return fmt.Errorf("competence threshold must be in [0,1], got %.2f", c.CompetenceThreshold)
	}
	if c.RecencyWindowDays < 0 {
		return fmt.Errorf("recency window must be non-negative, got %d", c.RecencyWindowDays)
	}
	if c.RepeatBoostThreshold < 1 {
		return fmt.Errorf("repeat boost threshold must be at least 1, got %d", c.RepeatBoostThreshold)
	}
	if c.RecentSolveN <= 0 {
		return fmt.Errorf("recent solve window must be positive, got %d", c.RecentSolveN)
	}
	return nil
}
