package cmd

import (
	"fmt"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rounds, err := st.SessionRepo().History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(rounds) == 0 {
			fmt.Println("No finished rounds yet.")
			return nil
		}

		for _, r := range rounds {
			score := 0
			if r.FinalScore != nil {
				score = *r.FinalScore
			}
			line := fmt.Sprintf("%s  score %4d", r.StartTime.Format("2006-01-02 15:04"), score)
			if r.Summary != nil {
				line += fmt.Sprintf("  %3.0f min  %d/9 successful",
					r.Summary.DurationMinutes, r.Summary.SuccessfulPositions)
			}
			if r.PenaltyMode {
				line += "  [penalty]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", store.DefaultHistoryLimit, "Maximum number of rounds to list")
}
