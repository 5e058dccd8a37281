package journal

import (
	"fmt"
	"strings"
	"time"
)

// PlaceholderLabel is the reserved label that marks a paused entry. It is
// written by pause instead of a real commit message and is rejected as a
// commit label.
const PlaceholderLabel = "(paused)"

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusPaused Status = "PAUSED"
	StatusClosed Status = "CLOSED"
)

// Entry is one recorded span of time against a project. An entry with a nil
// End is the currently open entry; the journal holds at most one of those,
// always as its final record.
type Entry struct {
	Project string
	Start   time.Time
	End     *time.Time
	Label   string
}

func (e Entry) Open() bool {
	return e.End == nil
}

func (e Entry) Paused() bool {
	return e.End != nil && e.Label == PlaceholderLabel
}

func (e Entry) Status() Status {
	switch {
	case e.Open():
		return StatusOpen
	case e.Paused():
		return StatusPaused
	default:
		return StatusClosed
	}
}

// Duration returns End-Start for a closed entry and zero for an open one.
func (e Entry) Duration() time.Duration {
	if e.End == nil {
		return 0
	}
	return e.End.Sub(e.Start)
}

// ValidateProject checks that a project name survives the line format
// unchanged: non-empty, no edge whitespace, and free of the two format
// metacharacter sequences (the open marker and the label separator).
func ValidateProject(project string) error {
	if project == "" {
		return fmt.Errorf("project name is empty")
	}
	if strings.TrimSpace(project) != project {
		return fmt.Errorf("project name %q has leading or trailing whitespace", project)
	}
	if strings.ContainsAny(project, "\n\r\t") {
		return fmt.Errorf("project name %q contains control characters", project)
	}
	if strings.Contains(project, openMarker) {
		return fmt.Errorf("project name %q contains reserved sequence %q", project, openMarker)
	}
	if strings.Contains(project, labelSeparator) {
		return fmt.Errorf("project name %q contains consecutive spaces", project)
	}
	return nil
}
