package wmctrl

import "testing"

func TestParseWindowList(t *testing.T) {
	out := "0x03a00003  1 4021 0    0    800  600  host notes.txt - gedit\n" +
		"0x04e00012  0 4022 800  0    800  600  host user@host: ~\n"
	records, err := parseWindowList(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.WindowID != "0x03a00003" {
		t.Errorf("window id: got %q", r.WindowID)
	}
	if r.PID != 4021 {
		t.Errorf("pid: got %d", r.PID)
	}
	if r.Workspace != 1 {
		t.Errorf("workspace: got %d", r.Workspace)
	}
	if r.Geometry.X != 0 || r.Geometry.Y != 0 || r.Geometry.Width != 800 || r.Geometry.Height != 600 {
		t.Errorf("geometry: got %+v", r.Geometry)
	}
	if r.Title != "notes.txt - gedit" {
		t.Errorf("title: got %q", r.Title)
	}
}

func TestParseWindowListSkipsSticky(t *testing.T) {
	// Desktop -1 marks panels/docks pinned to every workspace.
	out := "0x01200002 -1 1800 0 0 1920 28 host Top Bar\n" +
		"0x03a00003  0 4021 0 0 800 600 host notes.txt - gedit\n"
	records, err := parseWindowList(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected sticky window skipped, got %d records", len(records))
	}
	if records[0].PID != 4021 {
		t.Errorf("wrong surviving record: %+v", records[0])
	}
}

func TestParseWindowListTitleWithInnerSpaces(t *testing.T) {
	out := "0x05c00007 2 4023 10 20 640 480 host a  title  with   runs\n"
	records, err := parseWindowList(out)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Title != "a  title  with   runs" {
		t.Errorf("inner spacing lost: %q", records[0].Title)
	}
}

func TestParseWindowListEmptyAndBlankLines(t *testing.T) {
	records, err := parseWindowList("\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestParseWindowListMalformed(t *testing.T) {
	if _, err := parseWindowList("0x1 not-a-desktop\n"); err == nil {
		t.Error("expected error for malformed line")
	}
	if _, err := parseWindowList("0x1 0 bad-pid 0 0 1 1 host t\n"); err == nil {
		t.Error("expected error for bad pid")
	}
}
