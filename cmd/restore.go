package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [NAME]",
	Short: "Restore a saved session",
	Long: `Relaunch every application recorded in the named session and move each
new window back to its recorded workspace and geometry. Launches are
spaced by the restoring interval so the desktop is not overwhelmed and
each window has time to appear before it is looked up. Restore is
best-effort per window: failures are collected and summarized, never
fatal to the rest of the sequence. Ctrl-C aborts the remaining launches
and leaves already-placed windows alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().IntP("interval", "i", 2, "Seconds to wait between application launches")
}

func runRestore(cmd *cobra.Command, args []string) error {
	name := sessionNameArg(args)

	interval, _ := cmd.Flags().GetInt("interval")
	if !cmd.Flags().Changed("interval") {
		interval = cfg.RestoringInterval
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := mgr.Restore(ctx, name, time.Duration(interval)*time.Second, excludeTokens(cmd))
	if err != nil {
		if errors.Is(err, context.Canceled) && report != nil {
			// Interrupted: show what was done before the abort.
			_ = output.Print(report)
		}
		return err
	}
	return output.Print(report)
}
