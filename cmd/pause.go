package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the open time entry",
	Long: `Close the open entry with the reserved placeholder label.

A paused span is recorded in the journal but counts as a break, not as
committed work. Resume with "punch restart".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := newEngine()
		if err != nil {
			return err
		}

		entry, err := engine.Pause()
		if err != nil {
			return err
		}

		fmt.Printf("Paused %q at %s\n", entry.Project, entry.End.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
}
