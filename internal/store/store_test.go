package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xsm-dev/xsm/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()
	return New(filepath.Join(base, "sessions"), filepath.Join(base, "backups"))
}

func sampleRecords() []model.WindowRecord {
	return []model.WindowRecord{
		{
			WindowID:    "0x03a00003",
			PID:         4021,
			AppName:     "editor",
			Title:       "notes.txt - editor",
			Workspace:   1,
			Geometry:    model.Geometry{X: 0, Y: 0, Width: 800, Height: 600},
			CommandLine: []string{"editor", "notes.txt"},
		},
		{
			WindowID:    "0x04e00012",
			PID:         4022,
			AppName:     "terminal",
			Title:       "user@host: ~",
			Workspace:   1,
			Geometry:    model.Geometry{X: 800, Y: 0, Width: 800, Height: 600},
			CommandLine: []string{"terminal"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := sampleRecords()
	if err := s.Save("work", records); err != nil {
		t.Fatal(err)
	}
	session, err := s.Load("work")
	if err != nil {
		t.Fatal(err)
	}
	if session.Name != "work" {
		t.Errorf("name: got %q", session.Name)
	}
	if session.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
	if !reflect.DeepEqual(session.Windows, records) {
		t.Errorf("records did not round-trip:\n got %+v\nwant %+v", session.Windows, records)
	}
}

func TestSaveIdempotent(t *testing.T) {
	s := newTestStore(t)
	records := sampleRecords()
	if err := s.Save("work", records); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("work", records); err != nil {
		t.Fatal(err)
	}
	session, err := s.Load("work")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(session.Windows, records) {
		t.Errorf("double save changed records: %+v", session.Windows)
	}
}

func TestSaveBacksUpPriorSession(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("work", sampleRecords()[:1]); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("work", sampleRecords()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "work.backup-") {
		t.Errorf("unexpected backup name %q", entries[0].Name())
	}
}

func TestLoadNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "bad"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load("bad")
	if !errors.Is(err, ErrCorruptSession) {
		t.Errorf("expected ErrCorruptSession, got %v", err)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list before any save, got %v", names)
	}

	for _, name := range []string{"work", "default", "gaming"} {
		if err := s.Save(name, sampleRecords()); err != nil {
			t.Fatal(err)
		}
	}
	names, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"default", "gaming", "work"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestCrashMidSaveLeavesOldSessionLoadable(t *testing.T) {
	s := newTestStore(t)
	records := sampleRecords()
	if err := s.Save("work", records); err != nil {
		t.Fatal(err)
	}

	// Simulate an interrupted overwrite: a stray temp file next to the
	// session, as writeAtomic would leave behind if killed pre-rename.
	tmp := filepath.Join(s.dir, ".work.tmp-crashed")
	if err := os.WriteFile(tmp, []byte("partial garbag"), 0o644); err != nil {
		t.Fatal(err)
	}

	session, err := s.Load("work")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(session.Windows, records) {
		t.Errorf("old session damaged by interrupted save")
	}

	// Temp leftovers must not surface as sessions.
	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range names {
		if strings.HasPrefix(n, ".") {
			t.Errorf("temp file leaked into session list: %q", n)
		}
	}
}

func TestInvalidNames(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"", "a/b", "..", ".hidden"} {
		if err := s.Save(name, nil); err == nil {
			t.Errorf("expected Save(%q) to fail", name)
		}
		if _, err := s.Load(name); err == nil {
			t.Errorf("expected Load(%q) to fail", name)
		}
	}
}
