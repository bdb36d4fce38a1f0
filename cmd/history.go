package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recommendation history and recent runs",
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

		entries, err := st.HistoryRepo().Load(ctx, userID)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No recommendation history for", userID)
		} else {
			ids := make([]string, 0, len(entries))
			for id := range entries {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				e := entries[id]
				boost := ""
				if e.BoostGranted {
					boost = "yes"
				}
				rows = append(rows, []string{
					id,
					fmt.Sprintf("%d", e.TimesRecommended),
					e.LastRecommendedAt.Format(time.DateOnly),
					boost,
				})
			}
			fmt.Print(renderTable([]string{"QUESTION", "TIMES", "LAST", "BOOSTED"}, rows))
		}

		runs, err := st.RunRepo().RecentRuns(ctx, userID, 5)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			fmt.Println()
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.RunID[:8],
					r.Strategy,
					r.State,
					fmt.Sprintf("%d", r.Candidates),
				})
			}
			fmt.Print(renderTable([]string{"RUN", "STRATEGY", "STATE", "RESULTS"}, rows))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "User identifier")
}
