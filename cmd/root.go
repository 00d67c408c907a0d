package cmd

import (
	"os"

	"github.com/abhisek/intervu/internal/config"
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "Mock interview practice in the terminal",
	Long:  "Intervu is a terminal app for practicing job interviews with instant rule-based feedback, adaptive follow-up questions, and score history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVU_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides INTERVU_CONFIG env var)")
	rootCmd.PersistentFlags().Bool("offline", false, "Use mock voice and camera capabilities instead of live services")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, INTERVU_CONFIG, or
// the default XDG location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the INTERVU_DB env var, then the config file's db_path,
// then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfgPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("INTERVU_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfgPath != "" {
		return cfgPath, store.EnsureDir(cfgPath)
	}
	return store.DefaultDBPath()
}
