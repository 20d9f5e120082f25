package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/mmhcare/frontdesk-api/internal/config"
)

// Service delivers rendered documents over email. It is an external
// collaborator: the document text arrives fully formatted.
type Service interface {
	SendReceipt(ctx context.Context, to, receiptNumber, body string) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewService(cfg config.EmailConfig) Service {
	if !cfg.Enabled {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendReceipt(ctx context.Context, to, receiptNumber, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Receipt %s", receiptNumber))
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send receipt email: %w", err)
	}
	return nil
}

// noopService stands in when email is not configured.
type noopService struct{}

func (*noopService) SendReceipt(ctx context.Context, to, receiptNumber, body string) error {
	return nil
}
