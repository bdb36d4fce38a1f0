package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/graph"
	"github.com/abhisek/leetcoach/internal/recommend"
	"github.com/abhisek/leetcoach/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend which problems to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		cfg := recommend.DefaultConfig()
		applyRecommendFlags(cmd, &cfg)

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

		engine := recommend.NewEngine(
			graph.NewStore(client),
			st.CatalogRepo(),
			st.HistoryRepo(),
			st.RunRepo(),
		)

		result, err := engine.Recommend(ctx, userID, cfg)
		var histErr *recommend.ErrHistoryPersistence
		if errors.As(err, &histErr) {
			fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+histErr.Error()))
		} else if err != nil {
			return err
		}

		fmt.Printf("Strategy: %s    Difficulty ceiling: %s\n",
			headerStyle.Render(string(result.Strategy)), result.Ceiling)
		fmt.Println(dimStyle.Render("Focus topics: " + strings.Join(result.RankedTopics, ", ")))
		fmt.Println()

		if len(result.Recommendations) == 0 {
			fmt.Println("No unsolved questions match your focus topics right now.")
			return nil
		}

		rows := make([][]string, 0, len(result.Recommendations))
		for _, rec := range result.Recommendations {
			rows = append(rows, []string{
				rec.ID,
				string(rec.Difficulty),
				strings.Join(rec.Topics, ", "),
				fmt.Sprintf("%.2f", rec.Score),
			})
		}
		fmt.Print(renderTable([]string{"QUESTION", "DIFFICULTY", "TOPICS", "SCORE"}, rows))
		return nil
	},
}

// applyRecommendFlags overlays explicitly set pipeline flags onto cfg.
// Invalid combinations are left to cfg.Validate.
func applyRecommendFlags(cmd *cobra.Command, cfg *recommend.Config) {
	if v, _ := cmd.Flags().GetInt("top-k"); v > 0 {
		cfg.TopK = v
	}
	if v, _ := cmd.Flags().GetInt("candidates"); v > 0 {
		cfg.CandidateN = v
	}
	if cmd.Flags().Changed("competence") {
		cfg.CompetenceThreshold, _ = cmd.Flags().GetFloat64("competence")
	}
	// 0 is meaningful here: it disables the recency penalty window.
	if cmd.Flags().Changed("recency-days") {
		cfg.RecencyWindowDays, _ = cmd.Flags().GetInt("recency-days")
	}
	if v, _ := cmd.Flags().GetInt("boost-threshold"); v > 0 {
		cfg.RepeatBoostThreshold = v
	}
	if cmd.Flags().Changed("weight-accuracy") {
		cfg.Weights.Accuracy, _ = cmd.Flags().GetFloat64("weight-accuracy")
	}
	if cmd.Flags().Changed("weight-hints") {
		cfg.Weights.Hints, _ = cmd.Flags().GetFloat64("weight-hints")
	}
	if cmd.Flags().Changed("weight-explanation") {
		cfg.Weights.Explanation, _ = cmd.Flags().GetFloat64("weight-explanation")
	}
}

// registerRecommendFlags declares the pipeline flags on cmd.
func registerRecommendFlags(cmd *cobra.Command) {
	cmd.Flags().String("user", "", "User identifier")
	cmd.Flags().Int("top-k", 0, "Number of focus topics to rank (default 5)")
	cmd.Flags().Int("candidates", 0, "Number of recommendations to return (default 3)")
	cmd.Flags().Float64("competence", 0.5, "Solve ratio required to unlock a difficulty level")
	cmd.Flags().Int("recency-days", 0, "Recency penalty window in days (default 7, 0 disables)")
	cmd.Flags().Int("boost-threshold", 0, "Recommendations before the repeat boost (default 3)")
	cmd.Flags().Float64("weight-accuracy", 0.5, "Weakness weight for accuracy")
	cmd.Flags().Float64("weight-hints", 0.2, "Weakness weight for hint usage")
	cmd.Flags().Float64("weight-explanation", 0.2, "Weakness weight for explanation watching")
}

func init() {
	registerRecommendFlags(recommendCmd)
}
