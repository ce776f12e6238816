// Package store persists sessions as one pretty-printed JSON file per
// session name. Saves are atomic (write-to-temp-then-rename), so a crash
// mid-save never corrupts a previously good session, and the prior file is
// backed up before being replaced.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xsm-dev/xsm/internal/logging"
	"github.com/xsm-dev/xsm/internal/model"
)

var (
	// ErrSessionNotFound is returned by Load for a name never saved.
	ErrSessionNotFound = errors.New("session not found")

	// ErrCorruptSession is returned by Load when the stored data cannot
	// be parsed.
	ErrCorruptSession = errors.New("corrupt session")
)

var log = logging.ForComponent(logging.CompStore)

// backupTimeFormat matches the created_at precision so backup ids sort
// chronologically and never collide within one run.
const backupTimeFormat = "20060102150405.000000"

// createdAtFormat is the human-readable session timestamp format.
const createdAtFormat = "2006-01-02 15:04:05.000000"

// Store reads and writes sessions under a base directory, keeping
// replaced session files in a sibling backup directory.
type Store struct {
	dir       string
	backupDir string
}

// New returns a Store over dir, backing up replaced sessions to backupDir.
func New(dir, backupDir string) *Store {
	return &Store{dir: dir, backupDir: backupDir}
}

// Dir returns the session directory.
func (s *Store) Dir() string { return s.dir }

// Save writes records under name, replacing any prior session of that
// name. The prior file, if any, is backed up first; backup failure is
// logged but does not block the save.
func (s *Store) Save(name string, records []model.WindowRecord) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		if err := s.backup(name, path); err != nil {
			log.Warn("session backup failed", slog.String("session", name), slog.Any("error", err))
		}
	}

	session := model.Session{
		Name:      name,
		CreatedAt: time.Now().Format(createdAtFormat),
		Windows:   records,
	}
	data, err := json.MarshalIndent(session, "", "    ")
	if err != nil {
		return fmt.Errorf("encode session %q: %w", name, err)
	}
	return writeAtomic(path, data)
}

// Load reads the named session. Returns ErrSessionNotFound if it was
// never saved, ErrCorruptSession if the file cannot be parsed.
func (s *Store) Load(name string) (*model.Session, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, name)
		}
		return nil, fmt.Errorf("read session %q: %w", name, err)
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCorruptSession, name, err)
	}
	return &session, nil
}

// List returns saved session names, sorted. A missing sessions directory
// is an empty list, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// backup copies the session being replaced into the backup directory as
// NAME.backup-TIMESTAMP, stamping the copy with the backup time when the
// old content still parses. Unparseable old content is copied verbatim so
// nothing is lost.
func (s *Store) backup(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	now := time.Now()

	var session model.Session
	if err := json.Unmarshal(data, &session); err == nil {
		session.BackupTime = now.Format(createdAtFormat)
		if stamped, err := json.MarshalIndent(session, "", "    "); err == nil {
			data = stamped
		}
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return err
	}
	backupName := name + ".backup-" + strings.ReplaceAll(now.Format(backupTimeFormat), ".", "")
	return writeAtomic(filepath.Join(s.backupDir, backupName), data)
}

// writeAtomic writes data to path via a temp file and rename, fsyncing
// before the swap.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod session: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty session name")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid session name %q", name)
	}
	return nil
}
