package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

var moveCmd = &cobra.Command{
	Use:   "move [NAME]",
	Short: "Reapply a saved session's workspace layout",
	Long: `Move the currently open windows to the workspaces recorded in the named
session, without relaunching anything. Windows are matched to records by
window id, pid, title, or app name; a record whose window is no longer
open is reported as missed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := mgr.Move(ctx, sessionNameArg(args), excludeTokens(cmd))
	if err != nil {
		return err
	}
	return output.Print(report)
}
