// Package bot provides a wrapper for the Telegram bot to implement OutcomeNotifier
package bot

// Notifier wraps the package-level bot functions to implement the
// services.OutcomeNotifier interface
type Notifier struct{}

// NewNotifier creates a new bot notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// SendNotification sends a notification to the admin chat
func (n *Notifier) SendNotification(message string) {
	SendNotification(message)
}

// Ensure Notifier implements the OutcomeNotifier interface
var _ interface {
	SendNotification(message string)
} = (*Notifier)(nil)
