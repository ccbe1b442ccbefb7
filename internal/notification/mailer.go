// Package notification sends quote emails over SMTP.
package notification

import (
	"context"
	"io"

	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file attached to a message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is one outbound email.
type Message struct {
	To         string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Sender delivers messages. The quote pipeline depends on this interface so
// tests can count deliveries without an SMTP server.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig configures the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPMailer sends messages through an SMTP server via gomail.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. The context is checked before dialing; gomail
// itself does not support cancellation mid-send.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	if m.cfg.FromName != "" {
		gm.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	} else {
		gm.SetHeader("From", m.cfg.From)
	}
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if msg.Attachment != nil {
		data := msg.Attachment.Data
		gm.Attach(msg.Attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(gm)
}
