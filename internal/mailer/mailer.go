// Package mailer sends transactional email over SMTP. A dial or send
// failure is returned to the caller: requests that depend on delivery
// must not succeed silently.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
)

// Mailer sends plain-text email via an SMTP relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// New creates a Mailer for the given SMTP relay.
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
