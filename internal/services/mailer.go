package services

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/rs/zerolog"
)

// Mailer sends best-effort notification mail over SMTP. When no host is
// configured every send is a no-op.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   zerolog.Logger
}

func NewMailer(host string, port int, username, password, from string, logger zerolog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.from != ""
}

// NotifyAdminLogin mails the admin address that an admin sign-in happened.
func (m *Mailer) NotifyAdminLogin(adminEmail string, when time.Time) error {
	if !m.Enabled() {
		return nil
	}

	body := fmt.Sprintf(
		"Subject: Admin sign-in to CLEF Music\r\nFrom: %s\r\nTo: %s\r\n\r\nAn administrator signed in at %s.\r\n",
		m.from, adminEmail, when.Format(time.RFC1123),
	)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{adminEmail}, []byte(body)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info().Str("to", adminEmail).Msg("Admin login notification sent")
	return nil
}
