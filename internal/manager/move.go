package manager

import (
	"context"
	"log/slog"
	"sort"

	"github.com/xsm-dev/xsm/internal/model"
)

// Move reapplies a saved session's workspace layout to the windows that
// are open right now, without relaunching anything. Records are processed
// workspace by workspace; a record whose window cannot be found among the
// live windows is reported as missed. Each live window is moved at most
// once per run.
func (m *Manager) Move(ctx context.Context, name string, excludeTokens []string) (*RestoreReport, error) {
	session, err := m.store.Load(name)
	if err != nil {
		return nil, err
	}

	records := session.Windows
	sort.SliceStable(records, func(i, j int) bool { return records[i].Workspace < records[j].Workspace })
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

	live, err := m.provider.Lister.ListWindows()
	if err != nil {
		return nil, err
	}

	moved := make(map[string]bool)
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			report.Summarize()
			return report, err
		}

		target := m.matchLiveWindow(rec, live, moved)
		if target == nil {
			report.add(rec, OutcomePlacementMissed, "window not found")
			continue
		}
		moved[target.WindowID] = true

		if target.Workspace == rec.Workspace {
			report.add(rec, OutcomePlaced, "already in place")
			continue
		}

		restoreLog.Info("moving window to workspace",
			slog.String("title", target.Title), slog.Int("workspace", rec.Workspace))
		if err := m.provider.Mover.MoveToWorkspace(target.WindowID, rec.Workspace); err != nil {
			report.add(rec, OutcomePlacementMissed, err.Error())
			continue
		}
		report.add(rec, OutcomePlaced, "")
		_ = sleepCtx(ctx, m.settlePause)
	}

	report.Summarize()
	return report, nil
}

// matchLiveWindow finds the live window a record refers to. Unlike restore
// the original windows may well still exist, so the recorded id is tried
// first, then pid, then exact title, then app name.
func (m *Manager) matchLiveWindow(rec model.WindowRecord, live []model.WindowRecord, moved map[string]bool) *model.WindowRecord {
	var candidates []model.WindowRecord
	for _, w := range live {
		if moved[w.WindowID] {
			continue
		}
		candidates = append(candidates, w)
	}

	for i, w := range candidates {
		if w.WindowID == rec.WindowID {
			return &candidates[i]
		}
	}
	for i, w := range candidates {
		if rec.PID > 0 && w.PID == rec.PID {
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
