package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start tracking time for a project",
	Long: `Open a new time entry for the given project.

The project comes into existence with its first entry; nothing is declared
upfront. Fails when another entry is already open: pause or commit it first.`,
	Example: `
  # Start tracking
  punch start website
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := newEngine()
		if err != nil {
			return err
		}

		entry, err := engine.Start(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Started tracking %q at %s\n", entry.Project, entry.Start.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
