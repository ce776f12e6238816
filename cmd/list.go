package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

// ListResult is the output of the list command.
type ListResult struct {
	Sessions []string `yaml:"sessions" json:"sessions"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := newStore().List()
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return output.Print(ListResult{Sessions: names})
}
