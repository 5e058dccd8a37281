package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"punch/journal"
)

var restartAt string

var restartCmd = &cobra.Command{
	Use:   "restart [project]",
	Short: "Resume tracking after a pause",
	Long: `Open a new entry for a previously paused project.

Without an argument the most recently paused project is resumed. A custom
start time can be given with --at; it must not predate the journal's last
entry.`,
	Example: `
  # Resume the last paused project
  punch restart

  # Resume a specific project at a given time
  punch restart website --at "2026/03/02 14:30:00"
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := newEngine()
		if err != nil {
			return err
		}

		var at time.Time
		if strings.TrimSpace(restartAt) != "" {
			at, err = time.ParseInLocation(journal.TimestampLayout, restartAt, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --at value %q (expected %s)", restartAt, journal.TimestampLayout)
			}
		}

		project := ""
		if len(args) == 1 {
			project = args[0]
		}

		entry, err := engine.Restart(project, at)
		if err != nil {
			return err
		}

		fmt.Printf("Restarted %q at %s\n", entry.Project, entry.Start.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)

	restartCmd.Flags().StringVar(&restartAt, "at", "", "Start time override (2006/01/02 15:04:05)")
}
