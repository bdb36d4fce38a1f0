package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <catalog.json>",
	Short: "Import the question reference catalog",
	Long: "Import loads a JSON catalog of questions (id, difficulty, topics) " +
		"into the local store. The file is validated before any row is written.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := catalog.ReadImportFile(args[0])
		if err != nil {
			return err
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

		created, err := st.CatalogRepo().Import(cmd.Context(), questions)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d questions (%d new, %d refreshed)\n",
			len(questions), created, len(questions)-created)
		return nil
	},
}
