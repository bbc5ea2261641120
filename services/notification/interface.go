package notification

import "context"

// NotificationService delivers appointment reminders to clients.
type NotificationService interface {
	// SendReminder sends an appointment reminder e-mail.
	SendReminder(ctx context.Context, to, clientName, serviceName, startDateTime string) error
	// Enabled reports whether delivery is configured.
	Enabled() bool
}
