package notifier

import (
	"fmt"
	"net/smtp"
)

// SMTPNotifier sends notifications as plain-text mail to the admin inbox.
type SMTPNotifier struct {
	addr string
	auth smtp.Auth
	from string
	to   string
}

func NewSMTP(host string, port int, user, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: smtp.PlainAuth("", user, password, host),
		from: from,
		to:   to,
	}
}

func (n *SMTPNotifier) Notify(subject, message string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, n.to, subject, message)
	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{n.to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
