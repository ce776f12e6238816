package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/output"
)

// SaveResult is the output of a successful save.
type SaveResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Action  string `yaml:"action"  json:"action"`
	Session string `yaml:"session" json:"session"`
	Windows int    `yaml:"windows" json:"windows"`
	Path    string `yaml:"path"    json:"path"`
}

var saveCmd = &cobra.Command{
	Use:   "save [NAME]",
	Short: "Save the current windows as a session",
	Long: `Snapshot every open window (command line, workspace, geometry) and
persist it as the named session, replacing any prior session of that
name. Without NAME the default session is written. Windows matching an
--exclude token are left out of the snapshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	name := sessionNameArg(args)

	mgr, err := newManager()
	if err != nil {
		return err
	}

	records, err := mgr.Save(name, excludeTokens(cmd))
	if err != nil {
		return err
	}

	return output.Print(SaveResult{
		OK:      true,
		Action:  "save",
		Session: name,
		Windows: len(records),
		Path:    filepath.Join(mgr.Store().Dir(), name),
	})
}
