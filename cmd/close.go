package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

var closeCmd = &cobra.Command{
	Use:   "close [TOKENS...]",
	Short: "Gracefully close windows",
	Long: `Ask windows to close via the window manager (no process is killed).
Without tokens every window is targeted. Each token selects windows by
window id, pid, app name, or title substring, in that order of
interpretation; a window matching any token is targeted. --exclude
tokens remove windows from the target set. A window that refuses to
close is reported and the rest still close.`,
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := mgr.Close(ctx, args, excludeTokens(cmd))
	if err != nil {
		return err
	}
	return output.Print(report)
}
