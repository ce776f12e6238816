package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xsm-dev/xsm/internal/config"
	"github.com/xsm-dev/xsm/internal/logging"
	"github.com/xsm-dev/xsm/internal/manager"
	"github.com/xsm-dev/xsm/internal/model"
	"github.com/xsm-dev/xsm/internal/output"
	"github.com/xsm-dev/xsm/internal/proc"
	"github.com/xsm-dev/xsm/internal/store"
	"github.com/xsm-dev/xsm/internal/version"
	"github.com/xsm-dev/xsm/internal/wm/wmctrl"
)

// cfg is the effective configuration, resolved in PersistentPreRunE
// before any subcommand runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "xsm",
	Short: "Save, close, and restore X11 window sessions",
	Long: `xsm snapshots the open windows of an X11 desktop (position, workspace,
originating command line) into named sessions, and restores a saved
session later by relaunching each application and moving its new window
back into place. Window control is delegated to wmctrl.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().StringArrayP("exclude", "x", nil,
		"Exclude windows matching TOKEN (window id, pid, app name, or title substring); repeatable")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ~/.config/xsm/config.toml)")
	rootCmd.PersistentFlags().String("sessions-dir", "", "Override the session directory")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if dir, _ := rootCmd.PersistentFlags().GetString("sessions-dir"); dir != "" {
			cfg.SessionsDir = config.ExpandTilde(dir)
		}

		logging.Init(logging.Config{
			LogDir:     cfg.Logging.Dir,
			Level:      cfg.Logging.Level,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		})

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}

// newStore builds the session store from the effective configuration.
func newStore() *store.Store {
	return store.New(cfg.SessionsDir, cfg.BackupsDir)
}

// newManager wires the wmctrl backend, /proc inspection, and the session
// store. Fails with the tool-unavailable error if wmctrl is missing.
func newManager() (*manager.Manager, error) {
	client, err := wmctrl.New()
	if err != nil {
		return nil, err
	}
	return manager.New(client.Provider(), proc.NewFS(), newStore()), nil
}

// excludeTokens merges config-file excludes with -x flags.
func excludeTokens(cmd *cobra.Command) []string {
	flagTokens, _ := cmd.Flags().GetStringArray("exclude")
	return append(append([]string{}, cfg.Exclude...), flagTokens...)
}

// sessionNameArg returns the optional positional session name, falling
// back to the default session.
func sessionNameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return model.DefaultSessionName
}
