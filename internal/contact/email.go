package contact

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/dekkov/personal-website/config"
)

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender dispatches a single email. Implementations make exactly
// one attempt; a transient failure surfaces to the caller instead of
// being retried or queued.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// SMTPSender sends mail through a configured SMTP relay.
type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, msg Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// BuildEmail assembles the notification email for a validated
// submission. Every user-supplied field is escaped before it is
// interpolated into the HTML body.
func BuildEmail(to string, sub Submission) Email {
	var body strings.Builder
	body.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>\n", EscapeHTML(sub.Name))
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>\n", EscapeHTML(sub.Email))
	if sub.Company != "" {
		fmt.Fprintf(&body, "<p><strong>Company:</strong> %s</p>\n", EscapeHTML(sub.Company))
	}
	body.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&body, "<p>%s</p>\n", EscapeTextWithBreaks(sub.Message))

	return Email{
		To:      to,
		Subject: "Portfolio Contact: " + EscapeHTML(sub.Name),
		HTML:    body.String(),
	}
}
