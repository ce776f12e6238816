package wmctrl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xsm-dev/xsm/internal/model"
)

// parseWindowList parses `wmctrl -lpG` output. Each line is:
//
//	0x03a00003  1 4021 0 0 800 600 hostname notes.txt - gedit
//
// columns: window id, desktop, pid, x, y, width, height, client machine,
// then the window title (which may itself contain spaces).
func parseWindowList(out string) ([]model.WindowRecord, error) {
	var records []model.WindowRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, sticky, err := parseWindowLine(line)
		if err != nil {
			return nil, err
		}
		if sticky {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseWindowLine(line string) (rec model.WindowRecord, sticky bool, err error) {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return rec, false, fmt.Errorf("malformed wmctrl line: %q", line)
	}

	desktop, err := strconv.Atoi(fields[1])
	if err != nil {
		return rec, false, fmt.Errorf("bad desktop in wmctrl line %q: %w", line, err)
	}
	if desktop < 0 {
		return rec, true, nil
	}

	pid, err := strconv.Atoi(fields[2])
	if err != nil {
		return rec, false, fmt.Errorf("bad pid in wmctrl line %q: %w", line, err)
	}

	geom := [4]int{}
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(fields[3+i])
		if err != nil {
			return rec, false, fmt.Errorf("bad geometry in wmctrl line %q: %w", line, err)
		}
		geom[i] = v
	}

	// Title is everything after the client machine column. Recover it from
	// the original line rather than rejoining fields, so runs of spaces
	// inside titles survive.
	title := ""
	if idx := indexOfField(line, 8); idx >= 0 {
		title = line[idx:]
	}

	return model.WindowRecord{
		WindowID:  fields[0],
		PID:       pid,
		Title:     title,
		Workspace: desktop,
		Geometry:  model.Geometry{X: geom[0], Y: geom[1], Width: geom[2], Height: geom[3]},
	}, false, nil
}

// indexOfField returns the byte offset where the n-th whitespace-separated
// field starts, or -1 if the line has fewer fields.
func indexOfField(line string, n int) int {
	inField := false
	field := -1
	for i, r := range line {
		if r == ' ' || r == '\t' {
			inField = false
			continue
		}
		if !inField {
			inField = true
			field++
			if field == n {
				return i
			}
		}
	}
	return -1
}
