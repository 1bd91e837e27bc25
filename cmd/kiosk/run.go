package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"attendance-kiosk/bot"
	"attendance-kiosk/internal/camera"
	"attendance-kiosk/internal/decoder"
	"attendance-kiosk/internal/kiosk"
	"attendance-kiosk/internal/repository"
	"attendance-kiosk/internal/services"
)

var noCamera bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive kiosk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutdown signal received, closing kiosk...")
			cancel()
		}()

		var notifier services.OutcomeNotifier
		if cfg.TelegramBotToken != "" {
			if err := bot.Init(cfg.TelegramBotToken, cfg.AuthorizedChatID); err != nil {
				log.Printf("Warning: Failed to init Telegram Bot: %v", err)
			} else {
				bot.SetAttendanceURL(cfg.AttendanceBaseURL)
				bot.StartPolling()
				notifier = bot.NewNotifier()
				log.Println("Telegram Bot Initialized")
			}
		}

		attendanceRepo := repository.NewRESTAttendanceRepository(cfg.AttendanceBaseURL)
		submitService := services.NewSubmitService(attendanceRepo, notifier)

		var drv camera.Driver
		if !noCamera {
			drv = camera.NewFFmpegDriver(cfg.CameraDevice)
		}

		shell := kiosk.NewShell(os.Stdin, os.Stdout, submitService, drv, decoder.NewQRDecoder())
		return shell.Run(ctx)
	},
}

func init() {
	runCmd.Flags().BoolVar(&noCamera, "no-camera", false, "disable camera scanning, manual entry only")
}
