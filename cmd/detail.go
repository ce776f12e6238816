package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

var detailCmd = &cobra.Command{
	Use:   "detail NAME",
	Short: "Show the windows recorded in a session",
	Long: `Print every window record of the named session: app name, title,
workspace, geometry, and the command line a restore would relaunch.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
	session, err := newStore().Load(args[0])
	if err != nil {
		return err
	}
	return output.Print(session)
}
