package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"punch/journal"
	"punch/storage"
)

var (
	ErrAlreadyTracking = errors.New("an entry is already open; pause or commit it first")
	ErrNothingToPause  = errors.New("no open entry to pause")
	ErrNothingToCommit = errors.New("no open entry to commit")
	ErrInvalidLabel    = errors.New("invalid commit label")
	ErrInvalidProject  = errors.New("invalid project name")
	ErrNoPausedProject = errors.New("no paused project to restart")
	ErrStartBeforeTail = errors.New("start time predates the last journal entry")
)

// Store is the journal persistence surface the engine drives.
type Store interface {
	ReadAll() ([]journal.Entry, error)
	Append(journal.Entry) error
	UpdateLast(func(*journal.Entry) error) error
}

// Engine is the tracking state machine. It keeps no state of its own: the
// current state (idle or tracking) is derived from the journal's final
// record on every call, so independent invocations always agree.
type Engine struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Engine {
	return NewWithClock(store, time.Now)
}

func NewWithClock(store Store, clock func() time.Time) *Engine {
	return &Engine{store: store, now: clock}
}

// Start opens a new entry for project at the current time. Fails with
// ErrAlreadyTracking when any entry is still open; switching projects
// requires an explicit pause or commit first.
func (e *Engine) Start(project string) (journal.Entry, error) {
	return e.StartAt(project, e.now())
}

// StartAt opens a new entry with an explicit start time. The time must not
// precede the end of the journal's last record, or insertion order would no
// longer be chronological.
func (e *Engine) StartAt(project string, at time.Time) (journal.Entry, error) {
	if err := journal.ValidateProject(project); err != nil {
		return journal.Entry{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	entries, err := e.store.ReadAll()
	if err != nil {
		return journal.Entry{}, err
	}
	at = at.Truncate(time.Second)
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		if last.Open() {
			return journal.Entry{}, ErrAlreadyTracking
		}
		if at.Before(*last.End) {
			return journal.Entry{}, fmt.Errorf("%w: %s ends at %s",
				ErrStartBeforeTail, last.Project, last.End.Format(journal.TimestampLayout))
		}
	}

	entry := journal.Entry{Project: project, Start: at}
	if err := e.store.Append(entry); err != nil {
		return journal.Entry{}, err
	}
	return entry, nil
}

// Pause closes the open entry with the reserved placeholder label, recording
// a stop without declaring completed work.
func (e *Engine) Pause() (journal.Entry, error) {
	return e.closeOpen(journal.PlaceholderLabel, ErrNothingToPause)
}

// Commit closes the open entry with a descriptive label.
func (e *Engine) Commit(label string) (journal.Entry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return journal.Entry{}, fmt.Errorf("%w: label is empty", ErrInvalidLabel)
	}
	if label == journal.PlaceholderLabel {
		return journal.Entry{}, fmt.Errorf("%w: %q is reserved for paused entries", ErrInvalidLabel, label)
	}
	if strings.ContainsAny(label, "\n\r") {
		return journal.Entry{}, fmt.Errorf("%w: label spans multiple lines", ErrInvalidLabel)
	}
	return e.closeOpen(label, ErrNothingToCommit)
}

// Current reports the open entry, if any, and otherwise the project of the
// most recent paused entry as a restart hint.
func (e *Engine) Current() (*journal.Entry, string, error) {
	entries, err := e.store.ReadAll()
	if err != nil {
		return nil, "", err
	}
	if len(entries) > 0 {
		if last := entries[len(entries)-1]; last.Open() {
			return &last, "", nil
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Paused() {
			return nil, entries[i].Project, nil
		}
	}
	return nil, "", nil
}

// Restart resumes tracking after a pause. With an empty project it falls
// back to the most recently paused project. A zero time means now.
func (e *Engine) Restart(project string, at time.Time) (journal.Entry, error) {
	if project == "" {
		open, paused, err := e.Current()
		if err != nil {
			return journal.Entry{}, err
		}
		if open != nil {
			return journal.Entry{}, ErrAlreadyTracking
		}
		if paused == "" {
			return journal.Entry{}, ErrNoPausedProject
		}
		project = paused
	}
	if at.IsZero() {
		at = e.now()
	}
	return e.StartAt(project, at)
}

func (e *Engine) closeOpen(label string, idleErr error) (journal.Entry, error) {
	end := e.now().Truncate(time.Second)

	var closed journal.Entry
	err := e.store.UpdateLast(func(entry *journal.Entry) error {
		if !end.After(entry.Start) {
			// The journal requires a positive span per closed entry.
			end = entry.Start.Add(time.Second)
		}
		entry.End = &end
		entry.Label = label
		closed = *entry
		return nil
	})
	if errors.Is(err, storage.ErrNoOpenEntry) {
		return journal.Entry{}, idleErr
	}
	if err != nil {
		return journal.Entry{}, err
	}
	return closed, nil
}
