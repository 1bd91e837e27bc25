package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"attendance-kiosk/internal/badge"
)

var (
	badgeOut  string
	badgeSize int
)

var badgeCmd = &cobra.Command{
	Use:   "badge <attendance-id>",
	Short: "Render an attendance ID as a scannable QR badge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := badge.WriteFile(args[0], badgeSize, badgeOut); err != nil {
			return err
		}
		fmt.Printf("Badge written to %s\n", badgeOut)
		return nil
	},
}

func init() {
	badgeCmd.Flags().StringVarP(&badgeOut, "out", "o", "badge.png", "output PNG path")
	badgeCmd.Flags().IntVar(&badgeSize, "size", badge.DefaultSize, "image size in pixels")
}
