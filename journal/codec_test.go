package journal

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormat_OpenAndClosedShapes(t *testing.T) {
	t.Parallel()

	open := Entry{Project: "website", Start: mustParseTS(t, "2026/03/02 09:15:00")}
	if got := Format(open); got != "i 2026/03/02 09:15:00 ###website###" {
		t.Fatalf("unexpected open record: %q", got)
	}

	end := mustParseTS(t, "2026/03/02 10:25:00")
	closed := Entry{Project: "website", Start: open.Start, End: &end, Label: "Fixed the parser"}
	want := "i 2026/03/02 09:15:00 website  Fixed the parser\no 2026/03/02 10:25:00"
	if got := Format(closed); got != want {
		t.Fatalf("unexpected closed record: %q", got)
	}
}

func TestFormat_IsDeterministic(t *testing.T) {
	t.Parallel()

	end := mustParseTS(t, "2026/03/02 10:25:00")
	entry := Entry{Project: "website", Start: mustParseTS(t, "2026/03/02 09:15:00"), End: &end, Label: "work"}
	if Format(entry) != Format(entry) {
		t.Fatalf("serializing the same entry twice produced different output")
	}
}

func TestParseAll_RoundTripsOpenEntry(t *testing.T) {
	t.Parallel()

	original := Entry{Project: "website", Start: mustParseTS(t, "2026/03/02 09:15:00")}
	entries, err := ParseAll(strings.NewReader(Format(original) + "\n"))
	if err != nil {
		t.Fatalf("parse open record: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	assertEntryEqual(t, original, entries[0])
	if entries[0].Status() != StatusOpen {
		t.Fatalf("expected OPEN status, got %s", entries[0].Status())
	}
}

func TestParseAll_RoundTripsClosedEntry(t *testing.T) {
	t.Parallel()

	end := mustParseTS(t, "2026/03/02 10:25:00")
	original := Entry{Project: "website", Start: mustParseTS(t, "2026/03/02 09:15:00"), End: &end, Label: "Fixed bug"}

	entries, err := ParseAll(strings.NewReader(Format(original) + "\n"))
	if err != nil {
		t.Fatalf("parse closed record: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	assertEntryEqual(t, original, entries[0])
	if entries[0].Status() != StatusClosed {
		t.Fatalf("expected CLOSED status, got %s", entries[0].Status())
	}
}

func TestParseAll_RoundTripsPausedEntry(t *testing.T) {
	t.Parallel()

	end := mustParseTS(t, "2026/03/02 10:25:00")
	original := Entry{Project: "website", Start: mustParseTS(t, "2026/03/02 09:15:00"), End: &end, Label: PlaceholderLabel}

	entries, err := ParseAll(strings.NewReader(Format(original) + "\n"))
	if err != nil {
		t.Fatalf("parse paused record: %v", err)
	}
	if len(entries) != 1 || entries[0].Status() != StatusPaused {
		t.Fatalf("expected one PAUSED entry, got %+v", entries)
	}
}

func TestParseAll_SkipsBlankAndCommentLines(t *testing.T) {
	t.Parallel()

	content := "; generated by punch\n\n" +
		"i 2026/03/02 09:15:00 website  work\no 2026/03/02 10:25:00\n\n"
	entries, err := ParseAll(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parse with comments: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestParseAll_ReportsLineNumberOfBadTimestamp(t *testing.T) {
	t.Parallel()

	content := "i 2026/03/02 09:15:00 website  work\n" +
		"o 2026/03/02 10:25:00\n" +
		"i 2026/13/99 25:61:00 ###website###\n"

	_, err := ParseAll(strings.NewReader(content))
	assertParseErrorLine(t, err, 3)
}

func TestParseAll_RejectsUnrecognizedLine(t *testing.T) {
	t.Parallel()

	_, err := ParseAll(strings.NewReader("this is not a timeclock line\n"))
	assertParseErrorLine(t, err, 1)
}

func TestParseAll_RejectsCheckOutWithoutCheckIn(t *testing.T) {
	t.Parallel()

	_, err := ParseAll(strings.NewReader("o 2026/03/02 10:25:00\n"))
	assertParseErrorLine(t, err, 1)
}

func TestParseAll_RejectsMissingCheckOut(t *testing.T) {
	t.Parallel()

	_, err := ParseAll(strings.NewReader("i 2026/03/02 09:15:00 website  work\n"))
	assertParseErrorLine(t, err, 1)
}

func TestParseAll_RejectsRecordAfterOpenEntry(t *testing.T) {
	t.Parallel()

	content := "i 2026/03/02 09:15:00 ###website###\n" +
		"i 2026/03/02 11:00:00 ###docs###\n"
	_, err := ParseAll(strings.NewReader(content))
	assertParseErrorLine(t, err, 2)
}

func TestParseAll_RejectsCheckOutNotAfterCheckIn(t *testing.T) {
	t.Parallel()

	content := "i 2026/03/02 10:25:00 website  work\n" +
		"o 2026/03/02 09:15:00\n"
	_, err := ParseAll(strings.NewReader(content))
	assertParseErrorLine(t, err, 2)
}

func TestParseAll_RejectsMissingLabelSeparator(t *testing.T) {
	t.Parallel()

	_, err := ParseAll(strings.NewReader("i 2026/03/02 09:15:00 website work\no 2026/03/02 10:25:00\n"))
	assertParseErrorLine(t, err, 1)
}

func TestParseAll_RejectsEmptyOpenProject(t *testing.T) {
	t.Parallel()

	_, err := ParseAll(strings.NewReader("i 2026/03/02 09:15:00 ######\n"))
	assertParseErrorLine(t, err, 1)
}

func TestValidateProject_RejectsMetacharacters(t *testing.T) {
	t.Parallel()

	for _, project := range []string{"", " edge", "edge ", "a###b", "two  spaces", "tab\tname"} {
		if err := ValidateProject(project); err == nil {
			t.Fatalf("expected %q to be rejected", project)
		}
	}
	for _, project := range []string{"website", "my project", "infra-2026"} {
		if err := ValidateProject(project); err != nil {
			t.Fatalf("expected %q to be accepted: %v", project, err)
		}
	}
}

func assertParseErrorLine(t *testing.T, err error, line int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Line != line {
		t.Fatalf("expected error on line %d, got line %d (%v)", line, parseErr.Line, parseErr)
	}
}

func assertEntryEqual(t *testing.T, want, got Entry) {
	t.Helper()
	if got.Project != want.Project || got.Label != want.Label {
		t.Fatalf("entry mismatch: want %+v, got %+v", want, got)
	}
	if !got.Start.Equal(want.Start) {
		t.Fatalf("start mismatch: want %s, got %s", want.Start, got.Start)
	}
	if (got.End == nil) != (want.End == nil) {
		t.Fatalf("end presence mismatch: want %+v, got %+v", want, got)
	}
	if got.End != nil && !got.End.Equal(*want.End) {
		t.Fatalf("end mismatch: want %s, got %s", want.End, got.End)
	}
}

func mustParseTS(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}
