package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a manually entered task row",
	Long: `Adds a task row with source 手動. Manual rows are never touched by
sync: they are read back and re-appended verbatim on every pass.

Examples:
  taskdash add "確定申告の準備" --project 個人 --deadline 2026/03/15
  taskdash add "見積もり返信" --project co-co --status 進行中`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addProject  string
	addDeadline string
	addStatus   string
	addURL      string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addProject, "project", "", "Project name")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Deadline (yyyy/mm/dd)")
	addCmd.Flags().StringVar(&addStatus, "status", domain.StatusTodo, "Status")
	addCmd.Flags().StringVar(&addURL, "url", "", "Related URL")
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	task := domain.Task{
		Project:  addProject,
		Title:    args[0],
		Deadline: addDeadline,
		Status:   addStatus,
		Source:   domain.SourceManual,
		URL:      addURL,
	}
	if err := app.Store.Tasks.AppendManual(task); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "追加しました: %s\n", task.Title)
	return nil
}
