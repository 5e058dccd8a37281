package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"punch/internal/timeutil"
)

var commitCmd = &cobra.Command{
	Use:   "commit <label>",
	Short: "Close the open time entry with a descriptive label",
	Long: `Close the currently open entry with a label describing the work done.

The label must be non-empty after trimming and single-line.`,
	Example: `
  punch commit "Fixed the deployment pipeline"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := newEngine()
		if err != nil {
			return err
		}

		entry, err := engine.Commit(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Committed %q: %s (%s)\n", entry.Project, entry.Label, timeutil.FormatDuration(entry.Duration()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
