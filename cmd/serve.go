package cmd

import (
	"fmt"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/api"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "Serves the session API over HTTP so other frontends can drive the same database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		fmt.Printf("listening on %s (db: %s)\n", addr, dbPath)
		return api.NewServer(st.SessionRepo()).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
