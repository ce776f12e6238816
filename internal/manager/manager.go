// Package manager implements the session manager: snapshotting open
// windows, persisting them, closing them, and restoring a saved layout by
// relaunching and repositioning applications.
package manager

import (
	"log/slog"
	"time"

	"github.com/xsm-dev/xsm/internal/logging"
	"github.com/xsm-dev/xsm/internal/model"
	"github.com/xsm-dev/xsm/internal/proc"
	"github.com/xsm-dev/xsm/internal/store"
	"github.com/xsm-dev/xsm/internal/wm"
)

var snapLog = logging.ForComponent(logging.CompSnapshot)

// Manager coordinates the window tool, process inspection, and the
// session store. All batch operations are best-effort per window and
// sequential throughout: the only suspension points are the configured
// pauses.
type Manager struct {
	provider  *wm.Provider
	inspector proc.Inspector
	store     *store.Store
	launcher  Launcher

	// settlePause follows each successful move/resize call so the window
	// manager can absorb it before the next request.
	settlePause time.Duration

	// closePause separates close requests to different processes.
	closePause time.Duration
}

// New returns a Manager with the standard pauses and the detached-process
// launcher.
func New(provider *wm.Provider, inspector proc.Inspector, st *store.Store) *Manager {
	return &Manager{
		provider:    provider,
		inspector:   inspector,
		store:       st,
		launcher:    execLauncher{},
		settlePause: 250 * time.Millisecond,
		closePause:  250 * time.Millisecond,
	}
}

// Store exposes the underlying session store for list/detail.
func (m *Manager) Store() *store.Store { return m.store }

// Snapshot enumerates open windows, enriches each with its process's app
// name and command line, and drops windows matching any exclude token.
// Enrichment is best-effort: a process that died since enumeration leaves
// the record with empty app name and command line, which restore later
// reports as unlaunchable rather than guessing.
func (m *Manager) Snapshot(excludeTokens []string) ([]model.WindowRecord, error) {
	windows, err := m.provider.Lister.ListWindows()
	if err != nil {
		return nil, err
	}

	for i := range windows {
		info, err := m.inspector.Inspect(windows[i].PID)
		if err != nil {
			snapLog.Warn("process inspection failed",
				slog.Int("pid", windows[i].PID),
				slog.String("title", windows[i].Title),
				slog.Any("error", err))
			continue
		}
		windows[i].AppName = info.Name
		windows[i].CommandLine = info.CommandLine
		windows[i].ProcessCreated = info.Created
	}

	return model.NewFilter(excludeTokens, windows).Excluding(windows), nil
}

// Save snapshots the current windows and persists them under name,
// returning the captured records.
func (m *Manager) Save(name string, excludeTokens []string) ([]model.WindowRecord, error) {
	records, err := m.Snapshot(excludeTokens)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(name, records); err != nil {
		return nil, err
	}
	return records, nil
}
