package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/graph"
	"github.com/abhisek/leetcoach/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an attempt at a question",
	Long: "Log records one interaction with a question into the knowledge " +
		"graph: whether it was solved, time spent, attempts, and whether " +
		"hints or an explanation video were used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, _ := cmd.Flags().GetString("user")
		slug, _ := cmd.Flags().GetString("question")
		if userID == "" || slug == "" {
			return fmt.Errorf("--user and --question are required")
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

		// The question must exist in the reference catalog so the graph gets
		// consistent difficulty and topic tags.
		questions, err := st.CatalogRepo().AllQuestions(ctx)
		if err != nil {
			return err
		}
		var question *catalog.Question
		for i := range questions {
			if questions[i].ID == slug {
				question = &questions[i]
				break
			}
		}
		if question == nil {
			return fmt.Errorf("question %q not found in catalog; run 'leetcoach import' first", slug)
		}

		solved, _ := cmd.Flags().GetBool("solved")
		minutes, _ := cmd.Flags().GetFloat64("minutes")
		attempts, _ := cmd.Flags().GetInt("attempts")
		hint, _ := cmd.Flags().GetBool("hint")
		watched, _ := cmd.Flags().GetBool("watched-explanation")

		client, err := graph.Connect(ctx, graph.ConfigFromEnv())
		if err != nil {
			return err
		}
		defer client.Close(ctx)

		err = graph.NewStore(client).LogInteraction(ctx, userID, *question, graph.Interaction{
			Solved:             solved,
			TimeSpentMinutes:   minutes,
			Attempts:           attempts,
			HintUsed:           hint,
			WatchedExplanation: watched,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s for %s (solved=%v)\n", slug, userID, solved)
		return nil
	},
}

func init() {
	logCmd.Flags().String("user", "", "User identifier")
	logCmd.Flags().String("question", "", "Question slug, e.g. two-sum")
	logCmd.Flags().Bool("solved", false, "Whether the question was solved")
	logCmd.Flags().Float64("minutes", 0, "Time spent in minutes")
	logCmd.Flags().Int("attempts", 1, "Number of attempts")
	logCmd.Flags().Bool("hint", false, "Whether a hint was used")
	logCmd.Flags().Bool("watched-explanation", false, "Whether an explanation video was watched")
}
