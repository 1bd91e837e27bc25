package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"attendance-kiosk/internal/repository"
	"attendance-kiosk/internal/services"
)

var submitCmd = &cobra.Command{
	Use:   "submit <attendance-id>",
	Short: "Submit one attendance ID and print the outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attendanceRepo := repository.NewRESTAttendanceRepository(cfg.AttendanceBaseURL)
		submitService := services.NewSubmitService(attendanceRepo, nil)

		outcome, err := submitService.Submit(cmd.Context(), args[0])
		if errors.Is(err, services.ErrEmptyInput) {
			return fmt.Errorf("attendance ID must not be empty")
		}
		if err != nil {
			return err
		}

		if outcome.OK {
			fmt.Printf("✅ %s\n", outcome.Message)
			return nil
		}
		return fmt.Errorf("❌ %s", outcome.Message)
	},
}
