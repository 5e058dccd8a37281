package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage punch configuration file values.",
	Long: `Create and display the punch configuration file.

The configuration stores:
- journal.path (location of the timeclock journal file)
- report.include_paused (count paused spans into log totals)`,
	Example: `
  # Create default config in $HOME/.punch.yaml
  punch config create

  # Show active config and source file
  punch config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
