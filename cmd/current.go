package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"punch/printers"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the currently tracked project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := newEngine()
		if err != nil {
			return err
		}

		open, paused, err := engine.Current()
		if err != nil {
			return err
		}

		pp := &printers.Pretty{}
		pp.Current(open, paused, time.Now())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
