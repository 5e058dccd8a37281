package report

import (
	"time"

	"punch/journal"
)

type Options struct {
	// IncludePaused folds placeholder (paused) spans into the total instead
	// of only reporting them separately.
	IncludePaused bool
}

// Item is one journal entry with its computed duration. Provisional marks an
// entry that is still open, measured against the wall clock.
type Item struct {
	Entry       journal.Entry
	Duration    time.Duration
	Provisional bool
}

type ProjectSummary struct {
	Project     string
	Items       []Item
	Total       time.Duration
	PausedTotal time.Duration
}

// Summarize itemizes all entries of one project in journal order. Closed
// entries contribute End-Start; an open entry for the project contributes
// now-Start and is flagged provisional. Paused spans accumulate into
// PausedTotal and stay out of Total unless opts.IncludePaused is set. An
// unknown project yields an empty summary.
func Summarize(entries []journal.Entry, project string, now time.Time, opts Options) ProjectSummary {
	summary := ProjectSummary{Project: project}

	for _, e := range entries {
		if e.Project != project {
			continue
		}

		if e.Open() {
			d := now.Sub(e.Start)
			if d < 0 {
				d = 0
			}
			summary.Items = append(summary.Items, Item{Entry: e, Duration: d, Provisional: true})
			summary.Total += d
			continue
		}

		d := e.Duration()
		summary.Items = append(summary.Items, Item{Entry: e, Duration: d})
		if e.Paused() {
			summary.PausedTotal += d
			if opts.IncludePaused {
				summary.Total += d
			}
			continue
		}
		summary.Total += d
	}

	return summary
}

// Projects returns every project with at least one entry, in order of first
// appearance.
func Projects(entries []journal.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		if _, ok := seen[e.Project]; ok {
			continue
		}
		seen[e.Project] = struct{}{}
		out = append(out, e.Project)
	}
	return out
}
