// Package mail delivers account emails over SMTP. Sending happens in a
// background goroutine so the request path never waits on the mail
// server; failures are logged and dropped.
package mail

import (
	"context"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/taskhive/taskhive/pkg/slogx"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a Mailer from SMTP settings. If Host is empty the mailer
// is disabled: sends become log lines, which keeps local development
// working without a mail server.
func New(cfg Config) *Mailer {
	if cfg.Host == "" {
		return &Mailer{}
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

func (m *Mailer) SendVerificationCode(ctx context.Context, email, code string) {
	m.send(ctx, email, "Your verification code", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
			<h2 style="color: #333; text-align: center;">Verification code</h2>
			<p>Hello,</p>
			<p>Use the code below to continue. It expires in 10 minutes.</p>
			<p style="text-align: center; font-size: 28px; letter-spacing: 6px; font-weight: bold;">`+code+`</p>
			<p>If you did not request this code you can ignore this email.</p>
		</div>
	`)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, email, token string) {
	m.send(ctx, email, "Password reset", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
			<h2 style="color: #333; text-align: center;">Password reset</h2>
			<p>Hello,</p>
			<p>We received a request to reset your password. Use the token below
			in the app to choose a new one. It expires in one hour.</p>
			<p style="word-break: break-all; font-family: monospace; background: #f5f5f5; padding: 10px;">`+token+`</p>
			<p>If you did not request a reset you can ignore this email.</p>
		</div>
	`)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) {
	log := slogx.FromContext(ctx)

	if m.dialer == nil {
		log.Info("mailer disabled, dropping email",
			slog.String("to", to),
			slog.String("subject", subject),
		)
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	go func() {
		if err := m.dialer.DialAndSend(message); err != nil {
			log.Error("failed to send email",
				slog.String("to", to),
				slog.String("subject", subject),
				slog.Any("error", err),
			)
		}
	}()
}
