package cmd

import (
	"fmt"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/app"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI. startRound skips the home
// menu and drops straight into a round, resuming an unfinished one if found.
func runApp(cmd *cobra.Command, startRound bool) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Sessions:   st.SessionRepo(),
		StartRound: startRound,
	})
}
