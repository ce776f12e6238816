package model

// DefaultSessionName is used whenever a command is invoked without an
// explicit session name. It is an ordinary name: saving to it overwrites
// it like any other session.
const DefaultSessionName = "default"

// Session is a named snapshot of open windows, written as a whole by save
// and read (never mutated) by restore, move, list, and detail.
type Session struct {
	Name       string         `json:"name"                  yaml:"name"`
	CreatedAt  string         `json:"created_at"            yaml:"created_at"`
	BackupTime string         `json:"backup_time,omitempty" yaml:"backup_time,omitempty"`
	Windows    []WindowRecord `json:"windows"               yaml:"windows"`
}
