package notification

import (
	"context"
	"fmt"
	"time"

	"glowdesk/config"
	"glowdesk/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const sendTimeout = 15 * time.Second

// EmailNotificationService implements NotificationService over SMTP.
// Delivery is disabled when SMTP_HOST is not configured; reminders then
// log and no-op instead of failing the worker.
type EmailNotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotificationService builds the SMTP sender from central config.
func NewEmailNotificationService() *EmailNotificationService {
	cfg := config.AppConfig
	svc := &EmailNotificationService{from: cfg.SMTPFrom}
	if cfg.SMTPHost != "" {
		svc.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return svc
}

// Enabled reports whether an SMTP host is configured.
func (s *EmailNotificationService) Enabled() bool {
	return s.dialer != nil
}

// SendReminder sends an appointment reminder e-mail to the client.
func (s *EmailNotificationService) SendReminder(ctx context.Context, to, clientName, serviceName, startDateTime string) error {
	logger := utils.GetLogger()
	if !s.Enabled() {
		logger.Info("reminder skipped: SMTP not configured", zap.String("to", to))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reminder: your upcoming appointment")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your %s appointment on %s.\n\nSee you soon!",
		clientName, serviceName, startDateTime))

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	wait := sendTimeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send reminder to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}
