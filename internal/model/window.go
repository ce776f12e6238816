package model

// Geometry is a window's position and size in screen coordinates.
type Geometry struct {
	X      int `json:"x"      yaml:"x"`
	Y      int `json:"y"      yaml:"y"`
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// WindowRecord is one captured window: enough process identity to relaunch
// it and enough layout to put the new window back where it was. WindowID is
// the external tool's identifier and is only unique within one snapshot;
// a relaunched window gets a fresh id, so restore re-matches by the other
// attributes instead of reusing it.
type WindowRecord struct {
	WindowID       string   `json:"window_id"                 yaml:"window_id"`
	PID            int      `json:"pid"                       yaml:"pid"`
	AppName        string   `json:"app_name"                  yaml:"app_name"`
	Title          string   `json:"title"                     yaml:"title"`
	Workspace      int      `json:"workspace"                 yaml:"workspace"`
	Geometry       Geometry `json:"geometry"                  yaml:"geometry"`
	CommandLine    []string `json:"command_line"              yaml:"command_line"`
	ProcessCreated string   `json:"process_created,omitempty" yaml:"process_created,omitempty"`
}

// HasCommand reports whether the record carries a relaunchable command line.
// Windows whose owning process could not be inspected (remote apps,
// compatibility-layer launches) are captured with an empty command line.
func (r WindowRecord) HasCommand() bool {
	return len(r.CommandLine) > 0 && r.CommandLine[0] != ""
}

// MaxWorkspace returns the highest workspace index any record occupies,
// or 0 for an empty set.
func MaxWorkspace(records []WindowRecord) int {
	max := 0
	for _, r := range records {
		if r.Workspace > max {
			max = r.Workspace
		}
	}
	return max
}
