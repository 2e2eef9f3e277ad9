package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/render"
	"github.com/kochan17/taskdash/internal/worklog"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Recompute the dashboard from the work log",
	Long: `Folds the work log into per-project totals and portfolio-wide
hourly-rate metrics, and stores them in the dashboard region. The
operator-set target hourly rate is read first and written back
unchanged. Aborts before any write when the work log or the project
settings are empty.

Examples:
  taskdash dashboard           # Update and print the summary
  taskdash dashboard --json    # Emit stats and metrics as JSON`,
	RunE: runDashboard,
}

var dashboardJSON bool

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	sessions, err := app.Store.Sessions.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return &domain.EmptyInputError{What: "work log rows"}
	}

	settings, err := app.Store.Settings.Map()
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		return &domain.EmptyInputError{What: "project settings"}
	}

	// Read the operator-owned cell before recomputing anything.
	targetRate, err := app.Store.Dashboard.TargetRate()
	if err != nil {
		return err
	}

	stats, metrics := worklog.Aggregate(sessions, settings, targetRate)

	if err := app.Store.Dashboard.SaveSummary(uuid.NewString(), stats, metrics); err != nil {
		return err
	}

	if dashboardJSON {
		r := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: render.FormatJSON})
		return r.RenderJSON(struct {
			Projects []domain.ProjectStats   `json:"projects"`
			Metrics  domain.PortfolioMetrics `json:"metrics"`
		}{stats, metrics})
	}

	out := cmd.OutOrStdout()
	headers := []string{"プロジェクト", "総作業時間", "タスク数", "平均タスク時間", "報酬額", "実績時給"}
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, []string{
			st.Project,
			worklog.FormatHoursMinutes(st.TotalHours),
			fmt.Sprintf("%d件", st.TaskCount),
			worklog.FormatHoursMinutes(st.AvgHours),
			formatYen(st.Revenue, st.Revenue > 0),
			formatYen(st.HourlyRate, st.RateKnown),
		})
	}

	r := render.NewRenderer(out, render.Options{Format: render.FormatTable})
	if err := r.RenderTable(headers, rows); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "全プロジェクト合計時間: %s\n", worklog.FormatHoursMinutes(metrics.TotalHours))
	fmt.Fprintf(out, "受託案件の合計報酬: %s\n", formatYen(metrics.ContractRevenue, metrics.ContractRevenue > 0))
	fmt.Fprintf(out, "受託案件の実績時給: %s\n", formatYen(metrics.ActualRate, metrics.ActualRateKnown))
	fmt.Fprintf(out, "目標時給（手動入力）: %s\n", formatYen(metrics.TargetRate, metrics.TargetRate > 0))
	if metrics.GapMessage != "" {
		fmt.Fprintf(out, "ギャップ: %s\n", metrics.GapMessage)
	}

	return nil
}

// formatYen renders a yen amount, or the em dash placeholder when the value
// is not reportable.
func formatYen(amount int64, known bool) string {
	if !known {
		return "—"
	}
	return fmt.Sprintf("¥%d", amount)
}
