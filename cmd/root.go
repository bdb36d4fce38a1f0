package cmd

import (
	"github.com/abhisek/leetcoach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leetcoach",
	Short: "Personal LeetCode practice coach",
	Long: "LeetCoach tracks your problem-solving history in a knowledge graph " +
		"and recommends which problems to practice next.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEETCOACH_DB env var)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEETCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
