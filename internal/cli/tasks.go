package cli

import (
	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/render"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the current task table",
	Long: `Lists the merged task table: GitHub rows from the last sync plus
manually entered rows.

Examples:
  taskdash tasks             # Table format
  taskdash tasks --json      # JSON
  taskdash tasks --manual    # Only manually entered rows`,
	RunE: runTasks,
}

var (
	tasksJSON   bool
	tasksTSV    bool
	tasksManual bool
)

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.Flags().BoolVar(&tasksJSON, "json", false, "Output as JSON")
	tasksCmd.Flags().BoolVar(&tasksTSV, "tsv", false, "Output as TSV")
	tasksCmd.Flags().BoolVar(&tasksManual, "manual", false, "Only rows with source 手動")
}

func runTasks(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	var tasks []domain.Task
	if tasksManual {
		tasks, err = app.Store.Tasks.ListBySource(domain.SourceManual)
	} else {
		tasks, err = app.Store.Tasks.List()
	}
	if err != nil {
		return err
	}

	r := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: render.FormatTable})

	if tasksJSON {
		return r.RenderJSON(tasks)
	}
	if tasksTSV {
		return r.RenderTSV(taskHeaders, taskRows(tasks))
	}
	return r.RenderTable(taskHeaders, taskRows(tasks))
}
