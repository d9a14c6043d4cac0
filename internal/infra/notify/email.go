package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"booking-assistant/internal/pkg/config"
)

// EmailSender delivers plain-text mail over unauthenticated SMTP
// (Mailpit-compatible relays).
type EmailSender struct {
	addr string
	from string
}

func NewEmailSender(cfg config.NotifyConfig) *EmailSender {
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "no-reply@booking.local"
	}
	return &EmailSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.SMTPHost), strings.TrimSpace(cfg.SMTPPort)),
		from: from,
	}
}

func (s *EmailSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
