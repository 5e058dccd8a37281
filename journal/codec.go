package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// The journal uses the ledger timeclock grammar, one record per entry.
//
// Open entry, a single check-in line with the project wrapped in the open
// marker:
//
//	i 2026/03/02 09:15:00 ###punch###
//
// Closed entry, a check-in line carrying project and label separated by two
// spaces, followed by a check-out line:
//
//	i 2026/03/02 09:15:00 punch  Fixed the parser
//	o 2026/03/02 10:25:00
//
// Blank lines and ";" comment lines are tolerated between records on read
// and never written.
const (
	TimestampLayout = "2006/01/02 15:04:05"

	checkInPrefix  = "i "
	checkOutPrefix = "o "
	openMarker     = "###"
	labelSeparator = "  "
)

// ParseError reports a malformed journal line. Parsing never skips a bad
// line; the error carries the 1-based line number of the offending input.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("journal line %d: %s", e.Line, e.Reason)
}

// Format serializes an entry into its record text, without a trailing
// newline. Serialization is deterministic: the same entry always yields
// byte-identical output.
func Format(e Entry) string {
	if e.End == nil {
		return checkInPrefix + e.Start.Format(TimestampLayout) + " " + openMarker + e.Project + openMarker
	}
	return checkInPrefix + e.Start.Format(TimestampLayout) + " " + e.Project + labelSeparator + e.Label +
		"\n" + checkOutPrefix + e.End.Format(TimestampLayout)
}

// ParseAll reads an entire journal in on-disk order. It fails on the first
// malformed line and enforces record-level structure: every closed check-in
// needs a matching check-out, and an open entry may only appear as the final
// record.
func ParseAll(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries     []Entry
		pending     *Entry // closed-form check-in awaiting its check-out
		pendingLine int
		openSeen    bool
		lineNo      int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		switch {
		case strings.HasPrefix(line, checkInPrefix):
			if pending != nil {
				return nil, &ParseError{Line: lineNo, Reason: "check-in while previous entry still awaits check-out"}
			}
			if openSeen {
				return nil, &ParseError{Line: lineNo, Reason: "record after open entry; an open entry must be the final record"}
			}
			entry, open, err := parseCheckIn(line, lineNo)
			if err != nil {
				return nil, err
			}
			if open {
				entries = append(entries, entry)
				openSeen = true
				continue
			}
			pending = &entry
			pendingLine = lineNo

		case strings.HasPrefix(line, checkOutPrefix):
			if pending == nil {
				return nil, &ParseError{Line: lineNo, Reason: "check-out without a preceding check-in"}
			}
			end, err := parseTimestamp(line[len(checkOutPrefix):], lineNo)
			if err != nil {
				return nil, err
			}
			if !end.After(pending.Start) {
				return nil, &ParseError{Line: lineNo, Reason: "check-out does not follow its check-in in time"}
			}
			pending.End = &end
			entries = append(entries, *pending)
			pending = nil

		default:
			return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("unrecognized line %q", line)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if pending != nil {
		return nil, &ParseError{Line: pendingLine, Reason: "check-in missing its check-out line"}
	}

	return entries, nil
}

func parseCheckIn(line string, lineNo int) (Entry, bool, error) {
	rest := line[len(checkInPrefix):]
	if len(rest) < len(TimestampLayout)+2 {
		return Entry{}, false, &ParseError{Line: lineNo, Reason: "check-in line truncated"}
	}

	start, err := parseTimestamp(rest[:len(TimestampLayout)], lineNo)
	if err != nil {
		return Entry{}, false, err
	}
	if rest[len(TimestampLayout)] != ' ' {
		return Entry{}, false, &ParseError{Line: lineNo, Reason: "missing separator after timestamp"}
	}
	payload := rest[len(TimestampLayout)+1:]

	// Open form: payload is the project wrapped in the open marker.
	if strings.HasPrefix(payload, openMarker) {
		project := strings.TrimSuffix(strings.TrimPrefix(payload, openMarker), openMarker)
		if !strings.HasSuffix(payload, openMarker) || len(payload) < 2*len(openMarker)+1 {
			return Entry{}, false, &ParseError{Line: lineNo, Reason: "malformed open entry marker"}
		}
		if err := ValidateProject(project); err != nil {
			return Entry{}, false, &ParseError{Line: lineNo, Reason: err.Error()}
		}
		return Entry{Project: project, Start: start}, true, nil
	}

	// Closed form: project and label split on the two-space separator.
	project, label, found := strings.Cut(payload, labelSeparator)
	if !found {
		return Entry{}, false, &ParseError{Line: lineNo, Reason: "check-in has neither open marker nor project/label separator"}
	}
	if err := ValidateProject(project); err != nil {
		return Entry{}, false, &ParseError{Line: lineNo, Reason: err.Error()}
	}
	if label == "" {
		return Entry{}, false, &ParseError{Line: lineNo, Reason: "closed entry has an empty label"}
	}
	return Entry{Project: project, Start: start, Label: label}, false, nil
}

func parseTimestamp(value string, lineNo int) (time.Time, error) {
	ts, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("unparsable timestamp %q", value)}
	}
	return ts, nil
}
