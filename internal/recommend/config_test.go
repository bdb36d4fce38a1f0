package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetcoach/internal/rank"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero topK", func(c *Config) { c.TopK = 0 }},
		{"zero candidateN", func(c *Config) { c.CandidateN = 0 }},
		{"competence above one", func(c *Config) { c.CompetenceThreshold = 1.5 }},
		{"negative competence", func(c *Config) { c.CompetenceThreshold = -0.1 }},
		{"negative recency window", func(c *Config) { c.RecencyWindowDays = -1 }},
		{"zero boost threshold", func(c *Config) { c.RepeatBoostThreshold = 0 }},
		{"zero recent solves", func(c *Config) { c.RecentSolveN = 0 }},
		{"bad weights", func(c *Config) { c.Weights = rank.Weights{Accuracy: 2} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 5, cfg.TopK)
	require.Equal(t, 3, cfg.CandidateN)
	require.Equal(t, 0.5, cfg.CompetenceThreshold)
	require.Equal(t, 7, cfg.RecencyWindowDays)
	require.Equal(t, 3, cfg.RepeatBoostThreshold)
	require.Equal(t, 2, cfg.OverlapOverride)
	require.Equal(t, 4, cfg.RecentSolveN)
}
