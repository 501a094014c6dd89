package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, m *Mail) error
}

// SMTPSender delivers mail over SMTP with STARTTLS and PLAIN auth.
type SMTPSender struct {
	addr   string
	user   string
	pass   string
	sender string
}

// NewSMTPSender returns a sender for the given server. user may be empty
// for servers that accept unauthenticated submission.
func NewSMTPSender(server string, port int, user, pass, sender string) *SMTPSender {
	return &SMTPSender{
		addr:   fmt.Sprintf("%s:%d", server, port),
		user:   user,
		pass:   pass,
		sender: sender,
	}
}

// Send opens a fresh connection per message. Login volume is low enough
// that connection reuse is not worth the state handling.
func (s *SMTPSender) Send(_ context.Context, m *Mail) error {
	c, err := smtp.DialStartTLS(s.addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.addr, err)
	}
	defer c.Close()
	if s.user != "" {
		if err := c.Auth(sasl.NewPlainClient("", s.user, s.pass)); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}
	msg := m.render(s.sender, time.Now())
	if err := c.SendMail(s.sender, []string{m.To}, strings.NewReader(msg)); err != nil {
		return fmt.Errorf("send to %s: %w", m.To, err)
	}
	return c.Quit()
}
