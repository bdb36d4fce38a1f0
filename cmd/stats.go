package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/analyze"
	"github.com/abhisek/leetcoach/internal/graph"
	"github.com/abhisek/leetcoach/internal/recommend"
	"github.com/abhisek/leetcoach/internal/stats"
	"github.com/abhisek/leetcoach/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		client, err := graph.Connect(ctx, graph.ConfigFromEnv())
		if err != nil {
			return err
		}
		defer client.Close(ctx)

		cfg := recommend.DefaultConfig()
		agg := stats.NewAggregator(graph.NewStore(client), st.CatalogRepo())
		summary, err := agg.Collect(ctx, userID, cfg.RecentSolveN)
		if err != nil {
			return err
		}

		topics := make([]string, 0, len(summary.TopicStats))
		for topic := range summary.TopicStats {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		rows := make([][]string, 0, len(topics))
		for _, topic := range topics {
			ts := summary.TopicStats[topic]
			m := analyze.Normalize(ts)
			rows = append(rows, []string{
				topic,
				fmt.Sprintf("%d", ts.Count),
				fmt.Sprintf("%.2f%%", m.Accuracy),
				fmt.Sprintf("%.2f%%", m.HintUsageRate),
				fmt.Sprintf("%.2f%%", m.ExplanationWatchRate),
			})
		}
		fmt.Print(renderTable([]string{"TOPIC", "ATTEMPTS", "ACCURACY", "HINTS", "EXPLANATIONS"}, rows))

		fmt.Println()
		ceiling := recommend.DifficultyCeiling(summary.DifficultyStats, cfg.CompetenceThreshold)
		fmt.Println(dimStyle.Render(fmt.Sprintf("Unsolved questions: %d    Difficulty ceiling: %s",
			len(summary.Unsolved), ceiling)))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "User identifier")
}
