/*
Copyright © 2026

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"punch/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "Track elapsed time per project in a plain-text timeclock journal.",
	Long: `punch maintains an append-only, human-readable time journal.

Open a tracking session with "start", optionally "pause" and "restart" it,
and close it with "commit" and a descriptive label. "log" reports the
accumulated time per project straight from the journal file. At most one
entry is open at any moment; the journal is the sole durable state.`,
	Example: `
  # Start tracking a project
  punch start website

  # Pause without declaring finished work
  punch pause

  # Resume the paused project
  punch restart

  # Close the open entry with a label
  punch commit "Fixed the deployment pipeline"

  # Show what is currently tracked
  punch current

  # Report accumulated time for a project
  punch log website

  # Export a project's entries to Excel
  punch export website --output ./website.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.punch.yaml, then ./.punch.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".punch" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".punch")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional, but a present-and-broken one must not be
	// silently replaced by defaults.
	if err := ignoreMissingConfig(viper.ReadInConfig()); err != nil {
		cobra.CheckErr(fmt.Errorf("read config: %w", err))
	}
}

func ignoreMissingConfig(err error) error {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}
