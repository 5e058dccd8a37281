package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"punch/journal"
)

type Writer interface {
	Write(path string, entries []journal.Entry) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from the file extension, defaulting
// to CSV.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

const rowTimeLayout = "2006-01-02 15:04:05"

var entryHeaders = []string{"Start", "End", "Project", "Label", "Status", "Minutes"}

func entryRow(e journal.Entry) []string {
	end := ""
	minutes := ""
	if e.End != nil {
		end = e.End.Format(rowTimeLayout)
		minutes = fmt.Sprintf("%d", int(e.Duration().Minutes()))
	}
	return []string{
		e.Start.Format(rowTimeLayout),
		end,
		e.Project,
		e.Label,
		string(e.Status()),
		minutes,
	}
}
