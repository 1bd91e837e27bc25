package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	bot          *tgbotapi.BotAPI
	targetChatID int64
	baseURL      string
	startedAt    time.Time
)

// SetAttendanceURL records the backend URL reported by /status
func SetAttendanceURL(url string) {
	baseURL = strings.TrimRight(url, "/")
}

// Init initializes the Telegram Bot
func Init(token string, authorizedChatIDStr string) error {
	var err error
	bot, err = tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	bot.Debug = false
	startedAt = time.Now()
	log.Printf("Authorized on account %s", bot.Self.UserName)

	if authorizedChatIDStr != "" {
		id, err := strconv.ParseInt(authorizedChatIDStr, 10, 64)
		if err == nil {
			targetChatID = id
		}
	}

	return nil
}

// StartPolling starts the update loop
func StartPolling() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	go func() {
		for update := range updates {
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
			msg.ParseMode = "Markdown"

			switch update.Message.Command() {
			case "start":
				msg.Text = "🏷️ *Attendance kiosk*\n\n" +
					"*Commands:*\n" +
					"/getid - this chat's ID\n" +
					"/status - kiosk status"

			case "getid":
				msg.Text = fmt.Sprintf("Chat ID: `%d`", update.Message.Chat.ID)

			case "status":
				msg.Text = fmt.Sprintf("📡 *Kiosk online*\nBackend: `%s`\nUp since: `%s`",
					baseURL, startedAt.Format("2006-01-02 15:04:05"))

			default:
				msg.Text = "Unknown command, use /start"
			}

			if _, err := bot.Send(msg); err != nil {
				log.Printf("Bot send error: %v", err)
			}
		}
	}()
}

// SendNotification sends message to admin
func SendNotification(message string) {
	if bot == nil || targetChatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(targetChatID, message)
	msg.ParseMode = "Markdown"
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Failed to send: %v", err)
	}
}
