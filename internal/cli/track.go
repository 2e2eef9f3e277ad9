package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/worklog"
)

var trackCmd = &cobra.Command{
	Use:   "track TITLE",
	Short: "Append a work session to the log",
	Long: `Appends one row to the work log. Give either --start and --end
(HH:MM) or an explicit --hours duration. The dashboard pass derives
hours from start/end when no duration is stored.

Examples:
  taskdash track "API実装" --project co-co --start 10:00 --end 12:30
  taskdash track "レビュー対応" --project co-co --hours 1:30`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

var (
	trackProject string
	trackDate    string
	trackStart   string
	trackEnd     string
	trackHours   string
	trackNote    string
)

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVar(&trackProject, "project", "", "Project name")
	trackCmd.Flags().StringVar(&trackDate, "date", "", "Date (yyyy/mm/dd, default today)")
	trackCmd.Flags().StringVar(&trackStart, "start", "", "Start time (HH:MM)")
	trackCmd.Flags().StringVar(&trackEnd, "end", "", "End time (HH:MM)")
	trackCmd.Flags().StringVar(&trackHours, "hours", "", "Duration (H:MM or day fraction)")
	trackCmd.Flags().StringVar(&trackNote, "note", "", "Note")
}

func runTrack(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	date := trackDate
	if date == "" {
		date = time.Now().Format("2006/01/02")
	}

	session := domain.Session{
		Date:      date,
		Project:   trackProject,
		TaskTitle: args[0],
		Start:     trackStart,
		End:       trackEnd,
		Duration:  trackHours,
		Note:      trackNote,
	}

	if worklog.SessionHours(session) == 0 {
		return fmt.Errorf("session has no duration: give --start and --end, or --hours")
	}

	if err := app.Store.Sessions.Append(session); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "記録しました: %s (%s)\n", session.TaskTitle, worklog.FormatHoursMinutes(worklog.SessionHours(session)))
	return nil
}
