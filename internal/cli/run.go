package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sync and update the dashboard on a schedule",
	Long: `Runs a sync pass followed by a dashboard pass, then repeats on the
given interval until interrupted. Failures of one pass are reported and
the loop continues; the next tick is the retry.

Examples:
  taskdash run                   # Every hour
  taskdash run --interval 15m    # Every 15 minutes
  taskdash run --once            # One pass, then exit`,
	RunE: runRun,
}

var (
	runInterval time.Duration
	runOnce     bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&runInterval, "interval", time.Hour, "Time between passes")
	runCmd.Flags().BoolVar(&runOnce, "once", false, "Run one pass and exit")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	pass := func() {
		if err := runSync(cmd, nil); err != nil {
			// A missing token will not fix itself; surface it and stop.
			var confErr *domain.ConfigurationError
			if errors.As(err, &confErr) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				stop()
				return
			}
			fmt.Fprintf(os.Stderr, "sync failed: %v\n", err)
		}
		if err := runDashboard(cmd, nil); err != nil {
			var emptyErr *domain.EmptyInputError
			if errors.As(err, &emptyErr) {
				fmt.Fprintf(os.Stderr, "dashboard skipped: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "dashboard failed: %v\n", err)
			}
		}
	}

	pass()
	if runOnce {
		return nil
	}

	ticker := time.NewTicker(runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pass()
		}
	}
}
