package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Remote attendance backend
	AttendanceBaseURL string // e.g. http://localhost:3000

	// Camera
	CameraDevice string // V4L2 device path, e.g. /dev/video0

	// Telegram Bot (optional)
	TelegramBotToken string
	AuthorizedChatID string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("godotenv.Load() error: %v", err)
	}

	// Attendance backend URL, read once at startup
	baseURL := os.Getenv("ATTENDANCE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	device := os.Getenv("CAMERA_DEVICE")
	if device == "" {
		device = "/dev/video0"
	}

	return &Config{
		AttendanceBaseURL: baseURL,
		CameraDevice:      device,
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		AuthorizedChatID:  os.Getenv("AUTHORIZED_CHAT_ID"),
	}, nil
}
