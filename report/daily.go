package report

import (
	"math"
	"sort"
	"time"

	"punch/journal"
)

// DailySummary aggregates the closed entries of one calendar day.
type DailySummary struct {
	Date        string
	Start       time.Time
	End         time.Time
	WorkedHours float64
	PausedHours float64
	EntryCount  int
}

// BuildDailySummaries groups closed entries by start day, ordered by date.
// Worked hours cover committed spans, paused hours cover placeholder spans.
// An open entry is skipped; only durable spans are exported.
func BuildDailySummaries(entries []journal.Entry) []DailySummary {
	byDay := make(map[string][]journal.Entry)
	for _, e := range entries {
		if e.Open() {
			continue
		}
		day := e.Start.Format("2006-01-02")
		byDay[day] = append(byDay[day], e)
	}
	if len(byDay) == 0 {
		return []DailySummary{}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, summarizeDay(day, byDay[day]))
	}
	return summaries
}

func summarizeDay(day string, entries []journal.Entry) DailySummary {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})

	start := entries[0].Start
	end := *entries[len(entries)-1].End
	if end.Before(start) {
		end = start
	}

	var worked, paused time.Duration
	for _, e := range entries {
		if e.Paused() {
			paused += e.Duration()
			continue
		}
		worked += e.Duration()
	}

	return DailySummary{
		Date:        day,
		Start:       start,
		End:         end,
		WorkedHours: roundHours(worked.Hours()),
		PausedHours: roundHours(paused.Hours()),
		EntryCount:  len(entries),
	}
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}
