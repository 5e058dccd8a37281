package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"punch/journal"
)

// LedgerStore persists time entries in a single human-readable timeclock
// file. The file is the sole durable state; all mutations go through an
// exclusive advisory lock and an atomic temp-file+rename rewrite so a
// concurrent invocation never observes a half-written journal.
type LedgerStore struct {
	path string
}

var ErrNoOpenEntry = errors.New("journal has no open entry")

func Open(path string) (*LedgerStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is empty")
	}
	return &LedgerStore{path: filepath.Clean(path)}, nil
}

func (s *LedgerStore) Path() string {
	return s.path
}

// ReadAll parses the whole journal in on-disk order. A missing file reads as
// an empty journal; a malformed line surfaces as *journal.ParseError with
// its line number, never skipped.
func (s *LedgerStore) ReadAll() ([]journal.Entry, error) {
	// Nothing written yet; locking would fail on the missing directory.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	lock := flock.New(s.lockPath())
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock journal %s: %w", s.path, err)
	}
	defer lock.Unlock()

	return s.readLocked()
}

// Append writes one serialized record at the end of the journal, creating
// the parent directory on first use.
func (s *LedgerStore) Append(e journal.Entry) error {
	// The lock file lives next to the journal, so the directory must exist
	// before the lock can be taken.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock journal %s: %w", s.path, err)
	}
	defer lock.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open journal %s: %w", s.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(journal.Format(e) + "\n"); err != nil {
		return fmt.Errorf("append to journal %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close journal %s: %w", s.path, err)
	}
	return nil
}

// UpdateLast applies mutate to the journal's final record, which must be the
// open entry, and rewrites the file. Everything before the open record is
// carried over byte-identically; the whole file lands via an atomic rename.
// Returns ErrNoOpenEntry when the journal is empty or its last record is
// already closed.
func (s *LedgerStore) UpdateLast(mutate func(*journal.Entry) error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock journal %s: %w", s.path, err)
	}
	defer lock.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return ErrNoOpenEntry
	}
	if err != nil {
		return fmt.Errorf("read journal %s: %w", s.path, err)
	}

	entries, err := journal.ParseAll(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("parse journal %s: %w", s.path, err)
	}
	if len(entries) == 0 {
		return ErrNoOpenEntry
	}

	last := entries[len(entries)-1]
	if !last.Open() {
		return ErrNoOpenEntry
	}
	if err := mutate(&last); err != nil {
		return err
	}

	// The open record is the final check-in line; keep every byte before it
	// untouched, re-serialize only the mutated record, and carry over any
	// blank or comment lines a user placed after it.
	offset := lastCheckInOffset(raw)
	if offset < 0 {
		return fmt.Errorf("journal %s: cannot locate open record", s.path)
	}
	lineEnd := offset
	for lineEnd < len(raw) && raw[lineEnd] != '\n' {
		lineEnd++
	}
	suffix := ""
	if lineEnd < len(raw) {
		suffix = string(raw[lineEnd+1:])
	}
	content := string(raw[:offset]) + journal.Format(last) + "\n" + suffix

	return s.writeAtomic([]byte(content))
}

func (s *LedgerStore) readLocked() ([]journal.Entry, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", s.path, err)
	}
	defer file.Close()

	entries, err := journal.ParseAll(file)
	if err != nil {
		var parseErr *journal.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parse journal %s: %w", s.path, err)
		}
		return nil, fmt.Errorf("read journal %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *LedgerStore) writeAtomic(content []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return fmt.Errorf("write journal temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace journal %s: %w", s.path, err)
	}
	return nil
}

func (s *LedgerStore) lockPath() string {
	return s.path + ".lock"
}

// lastCheckInOffset returns the byte offset of the final line starting with
// "i ", or -1 when no check-in line exists.
func lastCheckInOffset(raw []byte) int {
	offset := -1
	lineStart := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == '\n' {
			line := string(raw[lineStart:i])
			if strings.HasPrefix(line, "i ") {
				offset = lineStart
			}
			lineStart = i + 1
		}
	}
	return offset
}
