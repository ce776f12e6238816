package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"save", "restore", "close", "move", "list", "detail", "prompt-restore", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"exclude", "stringArray"},
		{"config", "string"},
		{"sessions-dir", "string"},
	}
	flags := rootCmd.PersistentFlags()
	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected persistent flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestSessionNameArg(t *testing.T) {
	if got := sessionNameArg(nil); got != "default" {
		t.Errorf("expected default session name, got %q", got)
	}
	if got := sessionNameArg([]string{"work"}); got != "work" {
		t.Errorf("expected explicit name, got %q", got)
	}
}

func TestRestoreCommand_IntervalFlag(t *testing.T) {
	f := restoreCmd.Flags().Lookup("interval")
	if f == nil {
		t.Fatal("restore should have an --interval flag")
	}
	if f.DefValue != "2" {
		t.Errorf("expected default interval 2, got %s", f.DefValue)
	}
	if f.Shorthand != "i" {
		t.Errorf("expected -i shorthand, got %q", f.Shorthand)
	}
}
