// Package proc resolves process attributes from the /proc filesystem:
// the app name and the originating command line that a later restore
// relaunches.
package proc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Info describes one live process.
type Info struct {
	Name        string
	CommandLine []string
	Created     string
}

// Inspector looks up process attributes by pid.
type Inspector interface {
	Inspect(pid int) (Info, error)
}

// FS reads process info from a proc mount. Root is configurable so tests
// can point it at a fixture directory.
type FS struct {
	root string
}

// NewFS returns an Inspector over /proc.
func NewFS() *FS {
	return &FS{root: "/proc"}
}

// NewFSAt returns an Inspector over an alternate proc root.
func NewFSAt(root string) *FS {
	return &FS{root: root}
}

// Inspect reads comm and cmdline for pid. A process that exited between
// window enumeration and inspection yields an error; callers treat that as
// a window with no reconstructable command line, not a fatal failure.
func (f *FS) Inspect(pid int) (Info, error) {
	dir := filepath.Join(f.root, strconv.Itoa(pid))

	st, err := os.Stat(dir)
	if err != nil {
		return Info{}, fmt.Errorf("process %d: %w", pid, err)
	}

	comm, err := os.ReadFile(filepath.Join(dir, "comm"))
	if err != nil {
		return Info{}, fmt.Errorf("process %d: %w", pid, err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "cmdline"))
	if err != nil {
		return Info{}, fmt.Errorf("process %d: %w", pid, err)
	}

	return Info{
		Name:        strings.TrimSpace(string(comm)),
		CommandLine: splitCmdline(raw),
		Created:     st.ModTime().Format(time.DateTime),
	}, nil
}

// splitCmdline splits the NUL-separated argv from /proc/PID/cmdline.
// Kernel threads and some zombies expose an empty file; they come back as
// a nil slice.
func splitCmdline(raw []byte) []string {
	raw = bytes.TrimRight(raw, "\x00")
	if len(raw) == 0 {
		return nil
	}
	parts := bytes.Split(raw, []byte{0})
	args := make([]string, len(parts))
	for i, p := range parts {
		args[i] = string(p)
	}
	return args
}
