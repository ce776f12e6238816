// Package wm abstracts the external window-management tool. The tool is an
// opaque command-line collaborator keyed by window id; implementations live
// in subpackages (see internal/wm/wmctrl for the X11 backend).
package wm

import (
	"errors"

	"github.com/xsm-dev/xsm/internal/model"
)

// ErrToolUnavailable is returned when the external window tool is not
// installed or not executable. It is fatal for any operation that needs
// the tool and must reach the caller, never be swallowed.
var ErrToolUnavailable = errors.New("window tool unavailable")

// Lister enumerates open windows and workspaces.
type Lister interface {
	// ListWindows returns one record per open window from a single tool
	// invocation, so a window closing mid-enumeration can never yield a
	// half-populated record. Records carry id, pid, workspace, geometry,
	// and title; process-derived fields (app name, command line) are
	// filled in by the caller.
	ListWindows() ([]model.WindowRecord, error)

	// WorkspaceCount returns the number of virtual workspaces.
	WorkspaceCount() (int, error)
}

// Mover repositions and activates windows by id.
type Mover interface {
	MoveToWorkspace(windowID string, workspace int) error
	MoveResize(windowID string, geom model.Geometry) error
	Activate(windowID string) error
}

// Closer asks a window to close gracefully (never a forced process kill).
type Closer interface {
	CloseWindow(windowID string) error
}

// Provider bundles the tool backends used by the session manager.
type Provider struct {
	Lister Lister
	Mover  Mover
	Closer Closer
}
