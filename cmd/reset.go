package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear recommendation history for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := st.HistoryRepo().Clear(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Println("Cleared recommendation history for", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "User identifier")
}
