package cmd

import (
	"fmt"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the in-progress round",
	Long:  "Marks the unfinished round ended so the next launch starts clean. With --oldest N, also drops the N oldest archived rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		oldest, _ := cmd.Flags().GetInt("oldest")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.SessionRepo()
		ctx := cmd.Context()

		current, err := repo.LoadCurrent(ctx)
		if err != nil {
			return fmt.Errorf("load current round: %w", err)
		}
		if current == nil {
			fmt.Println("No round in progress.")
		} else {
			if err := repo.ClearCurrent(ctx, current.SessionID); err != nil {
				return fmt.Errorf("clear current round: %w", err)
			}
			fmt.Printf("Abandoned round at position %d (score %d).\n",
				current.CurrentNumber, current.Score())
		}

		if oldest > 0 {
			n, err := repo.DeleteOldest(ctx, oldest)
			if err != nil {
				return fmt.Errorf("delete oldest rounds: %w", err)
			}
			fmt.Printf("Deleted %d archived round(s).\n", n)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("oldest", 0, "Also delete the N oldest archived rounds")
}
