package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"punch/journal"
	"punch/output"
	"punch/report"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <project>",
	Short: "Export a project's journal entries to CSV/Excel",
	Long: `Export journal entries of one project.

Modes:
- raw: export each entry (start, end, label, status, minutes)
- daily: export per-day aggregates (start/end, worked hours, paused hours)

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export raw rows to CSV
  punch export website --output ./website.csv

  # Export raw rows to Excel
  punch export website --output ./website.xlsx

  # Export daily aggregates
  punch export website --mode daily --output ./website-daily.csv

  # Force Excel format independent of extension
  punch export website --mode daily --format excel --output ./website.out
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project := args[0]

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = output.DetectFormat(exportOutput)
		}

		_, store, err := openStore()
		if err != nil {
			return err
		}
		entries, err := store.ReadAll()
		if err != nil {
			return err
		}

		selected := make([]journal.Entry, 0, len(entries))
		for _, e := range entries {
			if e.Project == project {
				selected = append(selected, e)
			}
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, selected); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(selected), format, exportOutput)
		case "daily":
			summaries := report.BuildDailySummaries(selected)
			if err := output.WriteDailySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
