package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/dialog"
	"github.com/xsm-dev/xsm/internal/model"
	"github.com/xsm-dev/xsm/internal/output"
)

// PromptResult is the output when the user declines the prompt.
type PromptResult struct {
	OK       bool   `yaml:"ok"       json:"ok"`
	Action   string `yaml:"action"   json:"action"`
	Restored bool   `yaml:"restored" json:"restored"`
}

var promptRestoreCmd = &cobra.Command{
	Use:   "prompt-restore",
	Short: "Ask before restoring the default session",
	Long: `Show a desktop yes/no dialog and restore the default session on an
affirmative answer. Declining or dismissing the dialog does nothing and
exits successfully; it is intended for login autostart hooks.`,
	RunE: runPromptRestore,
}

func init() {
	rootCmd.AddCommand(promptRestoreCmd)
}

func runPromptRestore(cmd *cobra.Command, args []string) error {
	yes, err := dialog.Zenity{}.Ask("Restore the saved window session?")
	if err != nil {
		return err
	}
	if !yes {
		return output.Print(PromptResult{OK: true, Action: "prompt-restore", Restored: false})
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := mgr.Restore(ctx, model.DefaultSessionName,
		time.Duration(cfg.RestoringInterval)*time.Second, excludeTokens(cmd))
	if err != nil {
		return err
	}
	return output.Print(report)
}
