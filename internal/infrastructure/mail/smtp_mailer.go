package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrMailerNotConfigured = errors.New("missing EMAIL_USER or EMAIL_PASS")

// SMTPMailer delivers complaint mail to the platform mailbox, with a copy to
// the complainant.
//
// Env vars: EMAIL_USER, EMAIL_PASS, SMTP_HOST (default smtp.gmail.com),
// SMTP_PORT (default 587).

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if user == "" || pass == "" {
		return nil, ErrMailerNotConfigured
	}

	m := &SMTPMailer{
		host: os.Getenv("SMTP_HOST"),
		port: os.Getenv("SMTP_PORT"),
		user: user,
		pass: pass,
	}
	if m.host == "" {
		m.host = "smtp.gmail.com"
	}
	if m.port == "" {
		m.port = "587"
	}
	return m, nil
}

func (m *SMTPMailer) SendComplaint(ctx context.Context, name, email, message string) error {
	subject := fmt.Sprintf("Nova reclamação de %s", name)
	body := fmt.Sprintf(
		"Você enviou uma reclamação ao sistema Ecopontos Arapiraca:\n\n"+
			"Nome: %s\nEmail: %s\nMensagem:\n%s\n\nObrigado por entrar em contato!\n",
		name, email, message,
	)

	headers := []string{
		"From: " + m.user,
		"Reply-To: " + email,
		"To: " + m.user,
		"Cc: " + email,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
	}
	msg := []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port

	// net/smtp takes no context; honor cancellation before dialing at least.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := smtp.SendMail(addr, auth, m.user, []string{m.user, email}, msg); err != nil {
		log.Error().Err(err).Msg("complaint mail delivery failed")
		return err
	}
	return nil
}
