package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"punch/printers"
	"punch/report"
)

var logIncludePaused bool

var logCmd = &cobra.Command{
	Use:   "log <project>",
	Short: "Report accumulated time for a project",
	Long: `Itemize every journal entry of a project with its duration and print the
total. An open entry is measured against the current time and flagged as
provisional. Paused spans are listed but kept out of the total unless
--include-paused (or report.include_paused in the config) is set.`,
	Example: `
  punch log website
  punch log website --include-paused
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}

		entries, err := store.ReadAll()
		if err != nil {
			return err
		}

		opts := report.Options{IncludePaused: cfg.Report.IncludePaused}
		if cmd.Flags().Changed("include-paused") {
			opts.IncludePaused = logIncludePaused
		}

		summary := report.Summarize(entries, args[0], time.Now(), opts)

		pp := &printers.Pretty{}
		pp.Summary(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVar(&logIncludePaused, "include-paused", false, "Count paused spans into the total")
}
