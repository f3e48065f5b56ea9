// Package mailer delivers notification emails. SendGrid is used when an API
// key is configured; otherwise messages are only logged.
package mailer

import (
	"context"
	"fmt"

	"wirpackens-service/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New picks SendGrid when cfg carries an API key and the log mailer otherwise.
func New(cfg *config.MailConfig, log *otelzap.Logger) Mailer {
	if cfg.SendGridAPIKey == "" {
		return NewLogMailer(log)
	}
	return NewSendGridMailer(cfg, log)
}

type SendGridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
	log      *otelzap.Logger
}

func NewSendGridMailer(cfg *config.MailConfig, log *otelzap.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(msg.ToName, msg.To)

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	email := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, html)

	resp, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("mailer: sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mailer: sendgrid returned status %d", resp.StatusCode)
	}

	s.log.Ctx(ctx).Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	log *otelzap.Logger
}

func NewLogMailer(log *otelzap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (l *LogMailer) Send(ctx context.Context, msg Message) error {
	l.log.Ctx(ctx).Info("email not delivered, no mail provider configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
