package cli

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/github"
	"github.com/kochan17/taskdash/internal/render"
	tasksync "github.com/kochan17/taskdash/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync GitHub issues and board items into the task table",
	Long: `Fetches open issues from every configured repository (and Projects V2
board items when board_owner is set), de-duplicates them, and replaces
the GitHub rows of the task table. Manually entered rows are preserved
verbatim. A failing repository is reported as a warning and skipped;
the rest of the sync continues.

Safe to re-run: unchanged remote state produces an identical table.

Examples:
  taskdash sync            # Sync and print counts
  taskdash sync --diff     # Also show a unified diff of the table
  taskdash sync --json     # Emit the sync result as JSON`,
	RunE: runSync,
}

var (
	syncJSON bool
	syncDiff bool
)

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "Output as JSON")
	syncCmd.Flags().BoolVar(&syncDiff, "diff", false, "Show a unified diff of the task table")
}

func runSync(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	token, err := app.Config.RequireToken()
	if err != nil {
		return err
	}

	var before string
	if syncDiff {
		if before, err = tasksSnapshot(app.Store); err != nil {
			return err
		}
	}

	client := github.NewClient(github.Options{
		URL:   app.Config.GraphQLURL,
		Token: token,
	})
	syncer := tasksync.New(client, app.Store, app.Config.Repos, app.Config.BoardOwner)

	result, err := syncer.Sync(cmd.Context())
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if syncDiff {
		after, err := tasksSnapshot(app.Store)
		if err != nil {
			return err
		}
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(before),
			B:        difflib.SplitLines(after),
			FromFile: "tasks (before)",
			ToFile:   "tasks (after)",
			Context:  3,
		})
		if err != nil {
			return err
		}
		if diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), diff)
		}
	}

	if syncJSON {
		r := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: render.FormatJSON})
		return r.RenderJSON(result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "同期完了: %s\n", result.Summary())
	return nil
}
