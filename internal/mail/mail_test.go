package mail

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRender(t *testing.T) {
	m := &Mail{To: "alice@example.com", Subject: "Your login code", Content: "123456"}
	got := m.render("noreply@example.com", time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"From: noreply@example.com\r\n",
		"To: alice@example.com\r\n",
		"Subject: Your login code\r\n",
		"\r\n\r\n123456\r\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered mail missing %q:\n%s", want, got)
		}
	}
}

func TestQueueEnqueueFull(t *testing.T) {
	q := NewQueue(1)
	if err := q.Enqueue(&Mail{To: "a@example.com"}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue(&Mail{To: "b@example.com"}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Enqueue on full queue: want ErrQueueFull, got %v", err)
	}
}

type fakeSender struct {
	mu   sync.Mutex
	sent []*Mail
	err  error
}

func (s *fakeSender) Send(_ context.Context, m *Mail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestWorkerDeliversEnqueuedMail(t *testing.T) {
	q := NewQueue(4)
	sender := &fakeSender{}
	w := NewWorker(q, sender, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(context.Background())
	}()

	m := &Mail{To: "alice@example.com", Subject: "Your login code", Content: "123456"}
	if err := q.Enqueue(m); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not drain the queue")
	}
	if sender.count() != 1 {
		t.Fatalf("sent %d mails, want 1", sender.count())
	}
	if sender.sent[0] != m {
		t.Error("worker did not deliver the enqueued message")
	}
}

func TestWorkerKeepsRunningAfterSendFailure(t *testing.T) {
	q := NewQueue(4)
	sender := &fakeSender{err: errors.New("smtp down")}
	w := NewWorker(q, sender, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(context.Background())
	}()

	_ = q.Enqueue(&Mail{To: "a@example.com"})
	_ = q.Enqueue(&Mail{To: "b@example.com"})
	q.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped consuming after a send failure")
	}
}
