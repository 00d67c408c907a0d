package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent session scores",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		entries, err := st.HistoryRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-14s %-12s %8s %8s %8s %8s\n",
			"DATE", "MODE", "OVERALL", "COMM", "REASON", "READY")
		for _, e := range entries {
			fmt.Printf("%-14s %-12s %8d %8d %8d %8d\n",
				e.Date.Format("2006-01-02"), e.Mode,
				e.Score, e.Communication, e.Reasoning, e.Readiness)
		}
		return nil
	},
}
