package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"punch/internal/timeutil"
	"punch/journal"
	"punch/report"
)

// Pretty renders summaries and session state for the terminal.
type Pretty struct{}

// Summary prints the itemized entries of one project followed by totals.
func (p *Pretty) Summary(s report.ProjectSummary) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Fprint(color.Output, s.Project)
	switch len(s.Items) {
	case 1:
		_, _ = faint.Fprintln(color.Output, " - 1 entry")
	default:
		_, _ = faint.Fprintf(color.Output, " - %d entries\n", len(s.Items))
	}

	if len(s.Items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(color.Output, " none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, item := range s.Items {
		tbl.AddRow(
			item.Entry.Start.Format("2006-01-02 15:04"),
			timeutil.FormatDuration(item.Duration),
			labelCell(item),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	_, _ = color.New(color.Bold).Fprintf(color.Output, "Total: %s\n", timeutil.FormatDuration(s.Total))
	if s.PausedTotal > 0 {
		_, _ = faint.Fprintf(color.Output, "Paused: %s (not counted)\n", timeutil.FormatDuration(s.PausedTotal))
	}
}

// Current prints the live session, or the most recent paused project when
// the journal is idle.
func (p *Pretty) Current(open *journal.Entry, paused string, now time.Time) {
	if open != nil {
		running := now.Sub(open.Start)
		if running < 0 {
			running = 0
		}
		_, _ = color.New(color.Bold).Fprint(color.Output, open.Project)
		_, _ = fmt.Fprintf(color.Output, " tracking since %s (%s)\n",
			open.Start.Format("15:04:05"), timeutil.FormatDuration(running))
		return
	}
	if paused != "" {
		_, _ = fmt.Fprintf(color.Output, "No entry open. Last paused project: ")
		_, _ = color.New(color.FgHiYellow).Fprintln(color.Output, paused)
		return
	}
	_, _ = color.New(color.Faint).Fprintln(color.Output, "No entry open.")
}

func labelCell(item report.Item) string {
	switch {
	case item.Provisional:
		return color.New(color.FgHiGreen, color.Italic).Sprint("(open)")
	case item.Entry.Paused():
		return color.New(color.FgHiYellow, color.Faint).Sprint(item.Entry.Label)
	default:
		return item.Entry.Label
	}
}
