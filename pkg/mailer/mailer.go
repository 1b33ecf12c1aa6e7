// Package mailer delivers rendered emails.
package mailer

import (
	"context"
	"fmt"

	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is one fully rendered email, ready for delivery.
type Message struct {
	From    string
	ReplyTo string
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Service sends via SendGrid when an API key is configured and logs to the
// console otherwise (development mode).
type Service struct {
	sendGridKey string
	useSendGrid bool
	log         logger.Logger
}

// NewService creates a mail service. If sendGridAPIKey is empty, messages
// are logged instead of sent.
func NewService(sendGridAPIKey string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}

	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Info("✅ Mail service initialized with SendGrid")
	} else {
		log.Warn("⚠️  Mail service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
		log:         log,
	}
}

// Send delivers one message.
func (s *Service) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	if s.useSendGrid {
		return s.sendViaSendGrid(ctx, msg)
	}
	return s.logToConsole(msg)
}

func (s *Service) sendViaSendGrid(ctx context.Context, msg Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", msg.From))
	m.Subject = msg.Subject
	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	for _, cc := range msg.Cc {
		p.AddCCs(mail.NewEmail("", cc))
	}
	for _, bcc := range msg.Bcc {
		p.AddBCCs(mail.NewEmail("", bcc))
	}
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", msg.Body))

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	s.log.Info("✅ Email sent", "to", msg.To, "status", response.StatusCode)
	return nil
}

func (s *Service) logToConsole(msg Message) error {
	s.log.Info("📧 [EMAIL] "+msg.Subject,
		"to", msg.To, "from", msg.From, "cc", msg.Cc, "bcc", msg.Bcc)
	s.log.Warn("⚠️  Email NOT sent (development mode)")
	return nil
}
