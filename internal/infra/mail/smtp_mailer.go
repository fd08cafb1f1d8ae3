// Package mail implements the outbound email gateway over SMTP.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"pond/config"
	"pond/internal/domain/service"
)

// smtpMailer sends mail through a plain SMTP relay.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	var smtpCfg *config.SMTPConfig
	if cfg != nil {
		smtpCfg = cfg.SMTP
	}

	return &smtpMailer{cfg: smtpCfg, logger: logger}
}

// Send dispatches a single HTML email. An unconfigured relay is treated as a
// no-op so local development works without an SMTP server.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.cfg == nil || m.cfg.Host == "" || m.cfg.From == "" {
		m.logger.Warn("smtp config missing, skipping email", slog.String("subject", subject))

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
