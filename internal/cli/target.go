package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target [RATE]",
	Short: "Show or set the target hourly rate",
	Long: `The target hourly rate is the one dashboard cell the operator owns.
Dashboard recomputation reads it and writes it back unchanged; this
command is the only way taskdash itself modifies it.

Examples:
  taskdash target          # Show the current target
  taskdash target 2500     # Set the target to ¥2,500/h`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTarget,
}

func init() {
	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 0 {
		rate, err := app.Store.Dashboard.TargetRate()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatYen(rate, rate > 0))
		return nil
	}

	rate, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || rate < 0 {
		return fmt.Errorf("invalid target rate %q: must be a non-negative integer", args[0])
	}

	if err := app.Store.Dashboard.SetTargetRate(rate); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "目標時給を ¥%d に設定しました\n", rate)
	return nil
}
