package report

import (
	"testing"
	"time"

	"punch/journal"
)

func TestSummarize_TotalsTwoCommittedEntries(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		closedEntry(t, "proj", "2026/03/02 09:00:00", "2026/03/02 10:10:00", "First block"),
		closedEntry(t, "other", "2026/03/02 10:10:00", "2026/03/02 10:40:00", "Unrelated"),
		closedEntry(t, "proj", "2026/03/02 11:00:00", "2026/03/02 12:04:00", "Second block"),
	}

	summary := Summarize(entries, "proj", mustParseTS(t, "2026/03/02 13:00:00"), Options{})

	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 itemized entries, got %d", len(summary.Items))
	}
	if summary.Items[0].Entry.Label != "First block" || summary.Items[1].Entry.Label != "Second block" {
		t.Fatalf("items out of journal order: %+v", summary.Items)
	}
	if want := 134 * time.Minute; summary.Total != want {
		t.Fatalf("expected total %s, got %s", want, summary.Total)
	}
}

func TestSummarize_ExcludesPausedSpansByDefault(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		closedEntry(t, "proj", "2026/03/02 09:00:00", "2026/03/02 10:00:00", "Work"),
		closedEntry(t, "proj", "2026/03/02 10:00:00", "2026/03/02 10:30:00", journal.PlaceholderLabel),
	}
	now := mustParseTS(t, "2026/03/02 11:00:00")

	summary := Summarize(entries, "proj", now, Options{})
	if summary.Total != time.Hour {
		t.Fatalf("expected paused span excluded, total %s", summary.Total)
	}
	if summary.PausedTotal != 30*time.Minute {
		t.Fatalf("expected 30m paused total, got %s", summary.PausedTotal)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("paused entry must still be itemized, got %d items", len(summary.Items))
	}

	withPaused := Summarize(entries, "proj", now, Options{IncludePaused: true})
	if withPaused.Total != 90*time.Minute {
		t.Fatalf("expected paused span included, total %s", withPaused.Total)
	}
}

func TestSummarize_FlagsOpenEntryAsProvisional(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		{Project: "proj", Start: mustParseTS(t, "2026/03/02 09:00:00")},
	}
	now := mustParseTS(t, "2026/03/02 09:45:00")

	summary := Summarize(entries, "proj", now, Options{})
	if len(summary.Items) != 1 || !summary.Items[0].Provisional {
		t.Fatalf("expected one provisional item, got %+v", summary.Items)
	}
	if summary.Total != 45*time.Minute {
		t.Fatalf("expected provisional duration against the clock, got %s", summary.Total)
	}
}

func TestSummarize_UnknownProjectYieldsEmptySummary(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		closedEntry(t, "proj", "2026/03/02 09:00:00", "2026/03/02 10:00:00", "Work"),
	}

	summary := Summarize(entries, "nosuch", mustParseTS(t, "2026/03/02 11:00:00"), Options{})
	if len(summary.Items) != 0 || summary.Total != 0 || summary.PausedTotal != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestProjects_OrderOfFirstAppearance(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		closedEntry(t, "b", "2026/03/02 09:00:00", "2026/03/02 09:30:00", "x"),
		closedEntry(t, "a", "2026/03/02 09:30:00", "2026/03/02 10:00:00", "y"),
		closedEntry(t, "b", "2026/03/02 10:00:00", "2026/03/02 10:30:00", "z"),
	}

	got := Projects(entries)
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("unexpected project list: %v", got)
	}
}

func TestBuildDailySummaries_GroupsClosedEntriesByDay(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		closedEntry(t, "proj", "2026/03/02 09:00:00", "2026/03/02 10:00:00", "Work"),
		closedEntry(t, "proj", "2026/03/02 10:00:00", "2026/03/02 10:30:00", journal.PlaceholderLabel),
		closedEntry(t, "proj", "2026/03/03 08:00:00", "2026/03/03 10:00:00", "More work"),
		{Project: "proj", Start: mustParseTS(t, "2026/03/03 11:00:00")}, // open, skipped
	}

	summaries := BuildDailySummaries(entries)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 days, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Date != "2026-03-02" || first.WorkedHours != 1.00 || first.PausedHours != 0.50 || first.EntryCount != 2 {
		t.Fatalf("unexpected first day summary: %+v", first)
	}
	second := summaries[1]
	if second.Date != "2026-03-03" || second.WorkedHours != 2.00 || second.EntryCount != 1 {
		t.Fatalf("unexpected second day summary: %+v", second)
	}
}

func closedEntry(t *testing.T, project, start, end, label string) journal.Entry {
	t.Helper()
	e := mustParseTS(t, end)
	return journal.Entry{Project: project, Start: mustParseTS(t, start), End: &e, Label: label}
}

func mustParseTS(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(journal.TimestampLayout, value, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}
