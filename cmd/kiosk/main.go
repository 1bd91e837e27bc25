package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"attendance-kiosk/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "Attendance kiosk: scan or type an attendance ID and mark all present",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(badgeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
