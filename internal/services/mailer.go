package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/example/blossom/internal/config"
)

// Message is a single outbound email. Text and HTML are alternatives; either
// may be empty.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers transactional email. The OTP flows treat a delivery error
// as a hard failure, so implementations must report it.
type Mailer interface {
	Send(msg Message) error
}

// NewMailer picks the SendGrid sender when an API key is configured and the
// plain SMTP sender otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendGridAPIKey != "" {
		return &SendGridMailer{apiKey: cfg.SendGridAPIKey, from: cfg.EmailSender}
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.EmailSender,
		password: cfg.EmailPassword,
	}
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

// Send delivers the message via SMTP with an HTML or plain-text body.
func (m *SMTPMailer) Send(msg Message) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.from, msg.To, msg.Subject)

	body := msg.Text
	if msg.HTML != "" {
		headers += "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n"
		body = msg.HTML
	}

	payload := []byte(headers + "\r\n" + body)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{msg.To}, payload); err != nil {
		log.Printf("[Mail] SMTP send to %s failed: %v", msg.To, err)
		return err
	}

	return nil
}

// SendGridMailer sends mail through the SendGrid API.
type SendGridMailer struct {
	apiKey string
	from   string
}

// Send delivers the message via SendGrid.
func (m *SendGridMailer) Send(msg Message) error {
	from := sgmail.NewEmail("", m.from)
	to := sgmail.NewEmail("", msg.To)
	email := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(email)
	if err != nil {
		log.Printf("[Mail] SendGrid send to %s failed: %v", msg.To, err)
		return err
	}

	if resp.StatusCode >= 300 {
		log.Printf("[Mail] SendGrid returned status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
