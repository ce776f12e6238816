package manager

import (
	"fmt"

	"github.com/xsm-dev/xsm/internal/model"
)

// Outcome is the terminal state of one record in a batch operation.
// Restore walks each record through pending -> launched -> placed or
// placement-missed; close ends in closed or close-failed. A single bad
// record never aborts the batch, it just lands in the report.
type Outcome string

const (
	OutcomePlaced          Outcome = "placed"
	OutcomePlacementMissed Outcome = "placement_missed"
	OutcomeLaunchFailed    Outcome = "launch_failed"
	OutcomeSkipped         Outcome = "skipped"
	OutcomeClosed          Outcome = "closed"
	OutcomeCloseFailed     Outcome = "close_failed"
)

// RecordResult is the per-window outcome of a restore or close.
type RecordResult struct {
	WindowID string  `yaml:"window_id,omitempty" json:"window_id,omitempty"`
	AppName  string  `yaml:"app_name,omitempty"  json:"app_name,omitempty"`
	Title    string  `yaml:"title,omitempty"     json:"title,omitempty"`
	Outcome  Outcome `yaml:"outcome"             json:"outcome"`
	Reason   string  `yaml:"reason,omitempty"    json:"reason,omitempty"`
}

// RestoreReport accumulates per-record outcomes of one restore run.
type RestoreReport struct {
	Session string         `yaml:"session" json:"session"`
	Results []RecordResult `yaml:"results" json:"results"`
	Summary string         `yaml:"summary" json:"summary"`
}

func (r *RestoreReport) add(rec model.WindowRecord, outcome Outcome, reason string) {
	r.Results = append(r.Results, RecordResult{
		WindowID: rec.WindowID,
		AppName:  rec.AppName,
		Title:    rec.Title,
		Outcome:  outcome,
		Reason:   reason,
	})
}

func (r *RestoreReport) count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Summarize fills Summary with a one-line account of the run, e.g.
// "3 of 5 windows restored; 1 placement missed; 1 launch failed".
func (r *RestoreReport) Summarize() {
	placed := r.count(OutcomePlaced)
	missed := r.count(OutcomePlacementMissed)
	failed := r.count(OutcomeLaunchFailed)
	skipped := r.count(OutcomeSkipped)

	s := fmt.Sprintf("%d of %d windows restored", placed, len(r.Results))
	if missed > 0 {
		s += fmt.Sprintf("; %d placements missed", missed)
	}
	if failed > 0 {
		s += fmt.Sprintf("; %d launches failed", failed)
	}
	if skipped > 0 {
		s += fmt.Sprintf("; %d skipped", skipped)
	}
	r.Summary = s
}

// CloseReport accumulates per-window outcomes of one close run.
type CloseReport struct {
	Results []RecordResult `yaml:"results" json:"results"`
	Summary string         `yaml:"summary" json:"summary"`
}

func (r *CloseReport) add(rec model.WindowRecord, outcome Outcome, reason string) {
	r.Results = append(r.Results, RecordResult{
		WindowID: rec.WindowID,
		AppName:  rec.AppName,
		Title:    rec.Title,
		Outcome:  outcome,
		Reason:   reason,
	})
}

// Failed returns the windows that refused or failed to close.
func (r *CloseReport) Failed() []RecordResult {
	var failed []RecordResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeCloseFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Summarize fills Summary, e.g. "4 of 5 windows closed; 1 failed".
func (r *CloseReport) Summarize() {
	closed := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeClosed {
			closed++
		}
	}
	s := fmt.Sprintf("%d of %d windows closed", closed, len(r.Results))
	if failed := len(r.Results) - closed; failed > 0 {
		s += fmt.Sprintf("; %d failed", failed)
	}
	r.Summary = s
}
