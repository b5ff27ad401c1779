package jobs

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender ใช้แทน SMTP เมื่อยังไม่ได้ตั้งค่า SMTP_* (dev mode)
type LogSender struct{}

func (LogSender) Send(to, subject, _ string) error {
	log.Printf("📧 [dev] mail to=%s subject=%q", to, subject)
	return nil
}
