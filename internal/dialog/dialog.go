// Package dialog shows desktop yes/no prompts via an external dialog
// program.
package dialog

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrUnavailable is returned when no dialog program is installed.
var ErrUnavailable = errors.New("dialog tool unavailable")

// Asker presents a yes/no question to the user.
type Asker interface {
	// Ask returns true for an affirmative answer. Declining or dismissing
	// the dialog returns false with a nil error; dismissal is not a
	// failure.
	Ask(question string) (bool, error)
}

// Zenity asks via zenity(1).
type Zenity struct{}

func (Zenity) Ask(question string) (bool, error) {
	bin, err := exec.LookPath("zenity")
	if err != nil {
		return false, fmt.Errorf("%w: zenity not found on PATH", ErrUnavailable)
	}

	err = exec.Command(bin, "--question", "--text", question).Run()
	if err == nil {
		return true, nil
	}
	// zenity exits 1 on "No" and on a dismissed dialog.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("dialog failed: %w", err)
}
