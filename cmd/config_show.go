package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"punch/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  punch config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; built-in defaults apply.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("journal.path: %s\n", cfg.Journal.Path)
		fmt.Printf("report.include_paused: %t\n", cfg.Report.IncludePaused)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
