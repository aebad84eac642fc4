// File: /services/mail_notifier.go
package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"gopkg.in/gomail.v2"

	"sportsbuddy-api/models"
)

// MailQueue accepts messages for later delivery. Enqueue must not block.
type MailQueue interface {
	Enqueue(m *gomail.Message) bool
}

type MailOptions struct {
	FromEmail string
	FromName  string
	// Severities limits which notices are mailed. Empty means all.
	Severities []models.Severity
}

// MailNotifier mails notices that carry a recipient.
type MailNotifier struct {
	queue MailQueue
	opts  MailOptions
	log   *slog.Logger
}

func NewMailNotifier(queue MailQueue, opts MailOptions, log *slog.Logger) *MailNotifier {
	return &MailNotifier{queue: queue, opts: opts, log: log}
}

func (n *MailNotifier) Notify(ctx context.Context, notice models.Notice) {
	if notice.Recipient == "" || !n.wants(notice.Severity) {
		return
	}
	if !n.queue.Enqueue(n.compose(notice)) {
		n.log.WarnContext(ctx, "mail queue full, notice dropped", "recipient", notice.Recipient)
	}
}

func (n *MailNotifier) wants(s models.Severity) bool {
	if len(n.opts.Severities) == 0 {
		return true
	}
	for _, want := range n.opts.Severities {
		if want == s {
			return true
		}
	}
	return false
}

func (n *MailNotifier) compose(notice models.Notice) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", n.opts.FromName, n.opts.FromEmail))
	m.SetHeader("To", notice.Recipient)
	m.SetHeader("Subject", "SportsBuddy - "+notice.Message)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 560px; margin: 0 auto; padding: 24px;">
    <h2 style="color: %s;">SportsBuddy</h2>
    <p>%s</p>
    <p style="font-size: 12px; color: #888;">You are receiving this because of activity on your SportsBuddy account.</p>
  </div>
</body>
</html>`, severityColor(notice.Severity), html.EscapeString(notice.Message))

	m.SetBody("text/plain", notice.Message)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func severityColor(s models.Severity) string {
	switch s {
	case models.SeveritySuccess:
		return "#2e7d32"
	case models.SeverityError:
		return "#c62828"
	}
	return "#1565c0"
}
