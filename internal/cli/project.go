package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/render"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage project settings (revenue, billing type)",
}

var projectLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List project settings",
	RunE:  runProjectLs,
}

var projectSetCmd = &cobra.Command{
	Use:   "set NAME",
	Short: "Create or update one project's settings",
	Long: `Sets the revenue and billing type used by the dashboard.

Examples:
  taskdash project set co-co --revenue 300000 --type 受託
  taskdash project set 個人 --type 個人`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectSet,
}

var (
	projectLsJSON  bool
	projectRevenue int64
	projectType    string
	projectNote    string
)

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectLsCmd)
	projectCmd.AddCommand(projectSetCmd)

	projectLsCmd.Flags().BoolVar(&projectLsJSON, "json", false, "Output as JSON")
	projectSetCmd.Flags().Int64Var(&projectRevenue, "revenue", 0, "Revenue in yen, tax-exclusive (0 = not set)")
	projectSetCmd.Flags().StringVar(&projectType, "type", "", "Billing type: 受託, 自社, or 個人")
	projectSetCmd.Flags().StringVar(&projectNote, "note", "", "Note")
}

func runProjectLs(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	settings, err := app.Store.Settings.List()
	if err != nil {
		return err
	}

	r := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: render.FormatTable})
	if projectLsJSON {
		return r.RenderJSON(settings)
	}

	headers := []string{"プロジェクト名", "報酬額（税抜）", "種別", "備考"}
	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []string{
			s.Project,
			formatYen(s.Revenue, s.Revenue > 0),
			string(s.Type),
			s.Note,
		})
	}
	return r.RenderTable(headers, rows)
}

func runProjectSet(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	setting := domain.ProjectSetting{
		Project: args[0],
		Revenue: projectRevenue,
		Type:    domain.ProjectType(projectType),
		Note:    projectNote,
	}
	if err := app.Store.Settings.Upsert(setting); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "設定しました: %s (報酬 %s)\n", setting.Project, strconv.FormatInt(setting.Revenue, 10))
	return nil
}
