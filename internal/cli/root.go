package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskdash",
	Short: "Sync GitHub tasks and roll up work-log metrics",
	Long: `taskdash keeps one de-duplicated task list merged from GitHub issues,
Projects V2 boards, and manually entered rows, and rolls the work log up
into per-project hours, revenue, and hourly-rate metrics on a SQLite
backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to database file (overrides TASKDASH_DB_PATH)")
}
