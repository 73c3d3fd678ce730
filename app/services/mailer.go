package services

import (
	"fmt"
	"net/smtp"

	"lecturer-portal/app/config"
)

// Mailer delivers plain-text messages over SMTP. It is the portal's only
// outbound notification sink; no delivery confirmation is consumed.
type Mailer struct {
	SMTP config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{SMTP: cfg}
}

func (m *Mailer) Send(to string, body string) error {
	if m.SMTP.Host == "" || m.SMTP.From == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Lecturer Application Update\r\n\r\n%s",
		m.SMTP.From, to, body)

	addr := fmt.Sprintf("%s:%d", m.SMTP.Host, m.SMTP.Port)
	auth := smtp.PlainAuth("", m.SMTP.Username, m.SMTP.Password, m.SMTP.Host)
	return smtp.SendMail(addr, auth, m.SMTP.From, []string{to}, []byte(msg))
}
