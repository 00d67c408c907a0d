package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored profile, history, and replays",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all stored data. Re-run with --yes to confirm.")
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Reset(); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Println("All data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion without prompting")
}
