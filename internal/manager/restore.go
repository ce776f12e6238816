package manager

import (
	"context"
	"log/slog"
	"time"

	"github.com/xsm-dev/xsm/internal/logging"
	"github.com/xsm-dev/xsm/internal/model"
)

var restoreLog = logging.ForComponent(logging.CompRestore)

// Restore loads the named session, relaunches each recorded command line,
// and repositions the windows that appear. It is best-effort per record:
// a record that cannot be launched or whose window never shows up is
// reported, never fatal. Records matching an exclude token are skipped
// before anything launches. The interval is a fixed-delay throttle between
// launches, deliberately simple rather than event-driven, so the window
// manager has time to register one window before the next is queried.
//
// Cancelling ctx aborts the remaining sequence; windows already placed
// stay where they are.
func (m *Manager) Restore(ctx context.Context, name string, interval time.Duration, excludeTokens []string) (*RestoreReport, error) {
	session, err := m.store.Load(name)
	if err != nil {
		return nil, err
	}

	records := session.Windows
	records = model.NewFilter(excludeTokens, records).Excluding(records)

	report := &RestoreReport{Session: name}
	if len(records) == 0 {
		report.Summarize()
		return report, nil
	}

	if count, err := m.provider.Lister.WorkspaceCount(); err == nil {
		if need := model.MaxWorkspace(records) + 1; need > count {
			restoreLog.Warn("session needs more workspaces than exist",
				slog.Int("needed", need), slog.Int("have", count))
		}
	}

	// Windows open before the restore are never placement candidates;
	// identity across relaunch is re-resolved among new windows only.
	preexisting := make(map[string]bool)
	live, err := m.provider.Lister.ListWindows()
	if err != nil {
		return nil, err
	}
	for _, w := range live {
		preexisting[w.WindowID] = true
	}

	claimed := make(map[string]bool)

	for _, unit := range groupByPID(records) {
		if err := ctx.Err(); err != nil {
			report.Summarize()
			return report, err
		}

		rec := unit[0]
		if !rec.HasCommand() {
			restoreLog.Info("skipping record with no command line",
				slog.String("app", rec.AppName), slog.String("title", rec.Title))
			for _, r := range unit {
				report.add(r, OutcomeSkipped, "empty command line")
			}
			continue
		}

		restoreLog.Info("restoring application",
			slog.String("app", rec.AppName), slog.Any("cmd", rec.CommandLine))
		newPID, err := m.launcher.Start(rec.CommandLine)
		if err != nil {
			for _, r := range unit {
				report.add(r, OutcomeLaunchFailed, err.Error())
			}
			continue
		}

		if err := sleepCtx(ctx, interval); err != nil {
			for _, r := range unit {
				report.add(r, OutcomePlacementMissed, "restore interrupted")
			}
			report.Summarize()
			return report, err
		}

		m.placeUnit(ctx, unit, newPID, preexisting, claimed, report)
	}

	report.Summarize()
	return report, nil
}

// placeUnit locates the new window for each record of one launched process
// and moves it to the recorded workspace and geometry.
func (m *Manager) placeUnit(ctx context.Context, unit []model.WindowRecord, newPID int, preexisting, claimed map[string]bool, report *RestoreReport) {
	live, err := m.provider.Lister.ListWindows()
	if err != nil {
		for _, r := range unit {
			report.add(r, OutcomePlacementMissed, "window listing failed: "+err.Error())
		}
		return
	}

	for _, rec := range unit {
		target := m.matchNewWindow(rec, newPID, live, preexisting, claimed)
		if target == nil {
			restoreLog.Warn("no window appeared for record",
				slog.String("app", rec.AppName), slog.String("title", rec.Title))
			report.add(rec, OutcomePlacementMissed, "no matching window appeared")
			continue
		}
		claimed[target.WindowID] = true

		if err := m.place(rec, target.WindowID); err != nil {
			report.add(rec, OutcomePlacementMissed, err.Error())
			continue
		}
		report.add(rec, OutcomePlaced, "")
		_ = sleepCtx(ctx, m.settlePause)
	}
}

// matchNewWindow re-resolves a record's identity among newly appeared
// windows. Old window ids are useless after relaunch, so candidates are
// matched by the launched pid first, then exact title, then app name.
func (m *Manager) matchNewWindow(rec model.WindowRecord, newPID int, live []model.WindowRecord, preexisting, claimed map[string]bool) *model.WindowRecord {
	var candidates []model.WindowRecord
	for _, w := range live {
		if preexisting[w.WindowID] || claimed[w.WindowID] {
			continue
		}
		candidates = append(candidates, w)
	}

	for i, w := range candidates {
		if newPID > 0 && w.PID == newPID {
			return &candidates[i]
		}
	}
	for i, w := range candidates {
		if rec.Title != "" && w.Title == rec.Title {
			return &candidates[i]
		}
	}
	if rec.AppName != "" {
		for i, w := range candidates {
			if info, err := m.inspector.Inspect(w.PID); err == nil && info.Name == rec.AppName {
				return &candidates[i]
			}
		}
	}
	return nil
}

// place moves a window to the record's workspace and geometry.
func (m *Manager) place(rec model.WindowRecord, windowID string) error {
	if err := m.provider.Mover.MoveToWorkspace(windowID, rec.Workspace); err != nil {
		return err
	}
	return m.provider.Mover.MoveResize(windowID, rec.Geometry)
}

// groupByPID collapses records into launch units, one per recorded pid in
// first-seen order, so a multi-window process launches once but every one
// of its windows still gets a placement attempt. Records without a pid
// each form their own unit.
func groupByPID(records []model.WindowRecord) [][]model.WindowRecord {
	var units [][]model.WindowRecord
	index := make(map[int]int)
	for _, r := range records {
		if r.PID <= 0 {
			units = append(units, []model.WindowRecord{r})
			continue
		}
		if i, ok := index[r.PID]; ok {
			units[i] = append(units[i], r)
			continue
		}
		index[r.PID] = len(units)
		units = append(units, []model.WindowRecord{r})
	}
	return units
}

// sleepCtx sleeps for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
