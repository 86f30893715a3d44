package mailer

import (
	"emo_buddy_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPSender gửi mail cảnh báo qua SMTP, mỗi lần gửi mở một kết nối mới
// vì tần suất cảnh báo rất thấp
type SMTPSender struct {
	cfg config.AlertConfig
}

func NewSMTPSender(cfg config.AlertConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
