package cli

import (
	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/render"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the sync and dashboard run history",
	Long: `Shows the run event log: one entry per completed sync or dashboard
pass, newest first.

Examples:
  taskdash log              # Last 20 runs
  taskdash log --limit 0    # All runs
  taskdash log --json       # JSON`,
	RunE: runLog,
}

var (
	logJSON  bool
	logLimit int
)

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output as JSON")
	logCmd.Flags().IntVar(&logLimit, "limit", 20, "Limit number of entries (0 = unlimited)")
}

func runLog(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	query := `
		SELECT id, timestamp, run_id, resource_type, event_type, payload
		FROM event_log ORDER BY id DESC
	`
	queryArgs := []interface{}{}
	if logLimit > 0 {
		query += " LIMIT ?"
		queryArgs = append(queryArgs, logLimit)
	}

	rows, err := app.DB.Query(query, queryArgs...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.RunID, &e.ResourceType, &e.EventType, &e.Payload); err != nil {
			return err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	r := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: render.FormatTable})
	if logJSON {
		return r.RenderJSON(events)
	}

	headers := []string{"Timestamp", "Event", "Run", "Payload"}
	var rowsData [][]string
	for _, e := range events {
		payload := ""
		if e.Payload != nil {
			payload = *e.Payload
		}
		rowsData = append(rowsData, []string{e.Timestamp, e.EventType, e.RunID, payload})
	}
	return r.RenderTable(headers, rowsData)
}
