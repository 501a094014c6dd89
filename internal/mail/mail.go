// Package mail delivers outbound email through a buffered queue and an
// SMTP sender worker.
package mail

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrQueueFull is returned by Enqueue when the mail queue cannot accept
// another message.
var ErrQueueFull = errors.New("mail queue full")

// Mail is one outbound message.
type Mail struct {
	To      string
	Subject string
	Content string
}

// render produces the RFC 5322 wire form of the message.
func (m *Mail) render(from string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Content)
	b.WriteString("\r\n")
	return b.String()
}

// Queue is the buffered handoff between request handlers and the sender
// worker. Enqueue never blocks the request path.
type Queue struct {
	ch chan *Mail
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan *Mail, size)}
}

// Enqueue hands a message to the worker. Returns ErrQueueFull when the
// buffer is exhausted; the caller decides whether that fails its operation.
func (q *Queue) Enqueue(m *Mail) error {
	select {
	case q.ch <- m:
		return nil
	default:
		return ErrQueueFull
	}
}

// Messages exposes the consuming side of the queue to the worker.
func (q *Queue) Messages() <-chan *Mail {
	return q.ch
}

// Close stops the queue. The worker drains remaining messages and exits.
func (q *Queue) Close() {
	close(q.ch)
}
