package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/recommend"
)

func flagTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "recommend"}
	registerRecommendFlags(cmd)
	return cmd
}

func TestApplyRecommendFlags_Defaults(t *testing.T) {
	cmd := flagTestCmd()
	cfg := recommend.DefaultConfig()

	applyRecommendFlags(cmd, &cfg)
	if cfg != recommend.DefaultConfig() {
		t.Errorf("unset flags changed config: %+v", cfg)
	}
}

func TestApplyRecommendFlags_Overrides(t *testing.T) {
	cmd := flagTestCmd()
	for flag, value := range map[string]string{
		"top-k":           "7",
		"candidates":      "5",
		"competence":      "0.8",
		"recency-days":    "14",
		"boost-threshold": "4",
		"weight-accuracy": "0.6",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("set %s: %v", flag, err)
		}
	}

	cfg := recommend.DefaultConfig()
	applyRecommendFlags(cmd, &cfg)
	if cfg.TopK != 7 || cfg.CandidateN != 5 {
		t.Errorf("ranking knobs not applied: %+v", cfg)
	}
	if cfg.CompetenceThreshold != 0.8 || cfg.RecencyWindowDays != 14 || cfg.RepeatBoostThreshold != 4 {
		t.Errorf("scoring knobs not applied: %+v", cfg)
	}
	if cfg.Weights.Accuracy != 0.6 || cfg.Weights.Hints != 0.2 {
		t.Errorf("weights not applied: %+v", cfg.Weights)
	}
}

func TestApplyRecommendFlags_ZeroRecencyDisablesWindow(t *testing.T) {
	cmd := flagTestCmd()
	if err := cmd.Flags().Set("recency-days", "0"); err != nil {
		t.Fatalf("set recency-days: %v", err)
	}

	cfg := recommend.DefaultConfig()
	applyRecommendFlags(cmd, &cfg)
	if cfg.RecencyWindowDays != 0 {
		t.Errorf("RecencyWindowDays = %d, want 0", cfg.RecencyWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero recency window should validate: %v", err)
	}
}
