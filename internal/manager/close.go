package manager

import (
	"context"
	"log/slog"
	"sort"

	"github.com/xsm-dev/xsm/internal/logging"
	"github.com/xsm-dev/xsm/internal/model"
)

var closeLog = logging.ForComponent(logging.CompClose)

// Close gracefully closes the selected open windows. With no select
// tokens every window is a target; exclude tokens are removed from the
// target set either way. Windows are grouped by owning process and a
// process's windows close last-window-first, with a pause between
// processes. A window that fails to close is recorded and the run
// continues; the report carries the collected failures.
func (m *Manager) Close(ctx context.Context, selectTokens, excludeTokens []string) (*CloseReport, error) {
	windows, err := m.Snapshot(excludeTokens)
	if err != nil {
		return nil, err
	}
	selected := model.NewFilter(selectTokens, windows).Selected(windows)

	report := &CloseReport{}
	if len(selected) == 0 {
		report.Summarize()
		return report, nil
	}

	sort.SliceStable(selected, func(i, j int) bool { return selected[i].PID < selected[j].PID })

	for _, unit := range groupByPID(selected) {
		if err := ctx.Err(); err != nil {
			report.Summarize()
			return report, err
		}

		// Close a process's windows from the last one backwards; closing
		// the first window of some apps tears down the whole process and
		// orphans the rest of the requests.
		sort.SliceStable(unit, func(i, j int) bool { return unit[i].WindowID > unit[j].WindowID })

		for _, w := range unit {
			closeLog.Info("closing window",
				slog.String("app", w.AppName),
				slog.String("window_id", w.WindowID),
				slog.Int("pid", w.PID))
			if err := m.provider.Closer.CloseWindow(w.WindowID); err != nil {
				report.add(w, OutcomeCloseFailed, err.Error())
				continue
			}
			report.add(w, OutcomeClosed, "")
		}

		if err := sleepCtx(ctx, m.closePause); err != nil {
			report.Summarize()
			return report, err
		}
	}

	report.Summarize()
	return report, nil
}
