// Package wmctrl drives the wmctrl(1) command-line tool. All window
// operations shell out; wmctrl missing from PATH surfaces as
// wm.ErrToolUnavailable.
package wmctrl

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/xsm-dev/xsm/internal/model"
	"github.com/xsm-dev/xsm/internal/wm"
)

// Client runs wmctrl. The zero value is not usable; call New.
type Client struct {
	// bin is the resolved wmctrl executable path.
	bin string
}

// New locates wmctrl on PATH. Returns wm.ErrToolUnavailable if it is not
// installed or not executable.
func New() (*Client, error) {
	bin, err := exec.LookPath("wmctrl")
	if err != nil {
		return nil, fmt.Errorf("%w: wmctrl not found on PATH", wm.ErrToolUnavailable)
	}
	return &Client{bin: bin}, nil
}

// Provider returns a wm.Provider backed by this client.
func (c *Client) Provider() *wm.Provider {
	return &wm.Provider{Lister: c, Mover: c, Closer: c}
}

// ListWindows runs `wmctrl -lpG` and parses one record per line. Sticky
// windows (desktop -1: panels, docks) are skipped since they belong to no
// workspace and cannot be restored to one.
func (c *Client) ListWindows() ([]model.WindowRecord, error) {
	out, err := c.run("-lpG")
	if err != nil {
		return nil, err
	}
	return parseWindowList(out)
}

// WorkspaceCount runs `wmctrl -d` and counts the listed desktops.
func (c *Client) WorkspaceCount() (int, error) {
	out, err := c.run("-d")
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}

// MoveToWorkspace runs `wmctrl -ir ID -t N`.
func (c *Client) MoveToWorkspace(windowID string, workspace int) error {
	_, err := c.run("-ir", windowID, "-t", fmt.Sprintf("%d", workspace))
	return err
}

// MoveResize runs `wmctrl -ir ID -e 0,x,y,w,h` (gravity 0 keeps the
// window manager's default interpretation of x,y).
func (c *Client) MoveResize(windowID string, geom model.Geometry) error {
	spec := fmt.Sprintf("0,%d,%d,%d,%d", geom.X, geom.Y, geom.Width, geom.Height)
	_, err := c.run("-ir", windowID, "-e", spec)
	return err
}

// Activate runs `wmctrl -ia ID`.
func (c *Client) Activate(windowID string) error {
	_, err := c.run("-ia", windowID)
	return err
}

// CloseWindow runs `wmctrl -ic ID`, a graceful close request via the
// window manager. The window may refuse (unsaved-changes dialogs); wmctrl
// itself still exits 0 in that case, so refusal shows up later as the
// window still being open, not as an error here.
func (c *Client) CloseWindow(windowID string) error {
	_, err := c.run("-ic", windowID)
	return err
}

func (c *Client) run(args ...string) (string, error) {
	out, err := exec.Command(c.bin, args...).CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", wm.ErrToolUnavailable, err)
		}
		return "", fmt.Errorf("wmctrl %s: %s (%w)", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
