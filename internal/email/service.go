package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/medlink-api/pkg/logger"
)

type Service interface {
	SendRegistrationReceived(ctx context.Context, to string, name string) error
	SendCustom(ctx context.Context, to string, subject string, content string) error
}

// Dialer is the part of gomail.Dialer the SMTP service needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer Dialer
	from   string
}

func NewSMTPService(cfg SMTPConfig) Service {
	return NewServiceWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From)
}

func NewServiceWithDialer(d Dialer, from string) Service {
	return &smtpService{dialer: d, from: from}
}

func (s *smtpService) SendRegistrationReceived(ctx context.Context, to string, name string) error {
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for applying to join Medlink. We have received your registration "+
			"and credentials, and our team will review them shortly.</p><p>Medlink Provider Onboarding</p>",
		name,
	)
	return s.SendCustom(ctx, to, "Your Medlink registration was received", body)
}

func (s *smtpService) SendCustom(ctx context.Context, to string, subject string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", content)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// logService records outgoing mail instead of sending it. Used when no SMTP
// host is configured.
type logService struct {
	logger *logger.Logger
}

func NewLogService(l *logger.Logger) Service {
	return &logService{logger: l}
}

func (s *logService) SendRegistrationReceived(ctx context.Context, to string, name string) error {
	return s.SendCustom(ctx, to, "Your Medlink registration was received", name)
}

func (s *logService) SendCustom(ctx context.Context, to string, subject string, _ string) error {
	s.logger.WithContext(ctx).Info("email delivery disabled", "to", to, "subject", subject)
	return nil
}
