package infra

import (
	"fmt"
	"net/smtp"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for outbound notifications.
type Mailer struct {
	from     string
	user     string
	password string
	host     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from:     cfg.SMTPFrom,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		host:     cfg.SMTPHost,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Send delivers a plain-text email.
func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	return e.Send(m.addr, smtp.PlainAuth("", m.user, m.password, m.host))
}
