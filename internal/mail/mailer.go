package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/markeugine/atelier-backend/internal/config"
)

type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(
		m.cfg.SMTPHost,
		m.cfg.SMTPPort,
		m.cfg.SMTPUser,
		m.cfg.SMTPPassword,
	)

	return d.DialAndSend(msg)
}

func (m *Mailer) SendOTP(to, code string) error {
	body := fmt.Sprintf(
		"<p>Your verification code is <b>%s</b>.</p><p>It expires in 10 minutes.</p>",
		code,
	)
	return m.Send(to, "Verify your email", body)
}

func (m *Mailer) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"<p>Use this token to reset your password:</p><p><code>%s</code></p><p>It expires in 15 minutes.</p>",
		token,
	)
	return m.Send(to, "Password reset", body)
}
