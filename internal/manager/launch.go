package manager

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Launcher starts a recorded command line as a new process.
type Launcher interface {
	// Start launches argv detached from the CLI process and returns the
	// new pid. It must not wait for the process to exit.
	Start(argv []string) (int, error)
}

// execLauncher starts commands in their own session so they outlive the
// CLI and never share its terminal.
type execLauncher struct{}

func (execLauncher) Start(argv []string) (int, error) {
	if len(argv) == 0 || argv[0] == "" {
		return 0, fmt.Errorf("empty command line")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = nil
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err == nil {
		cmd.Stdout = devnull
		cmd.Stderr = devnull
		defer devnull.Close()
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("launch %q: %w", argv[0], err)
	}
	pid := cmd.Process.Pid
	// Reap in the background so short-lived launchers don't linger as
	// zombies while this process is still running.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}
