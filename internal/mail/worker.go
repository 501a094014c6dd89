package mail

import (
	"context"

	"go.uber.org/zap"
)

// Worker consumes the mail queue and delivers messages. Delivery failures
// are logged and do not stop the worker; the one-time codes carried by
// these mails expire on their own.
type Worker struct {
	queue  *Queue
	sender Sender
	log    *zap.Logger
}

func NewWorker(queue *Queue, sender Sender, log *zap.Logger) *Worker {
	return &Worker{queue: queue, sender: sender, log: log}
}

// Run delivers messages until ctx is cancelled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-w.queue.Messages():
			if !ok {
				return
			}
			if err := w.sender.Send(ctx, m); err != nil {
				w.log.Error("mail: delivery failed",
					zap.String("to", m.To), zap.Error(err))
				continue
			}
			w.log.Debug("mail: delivered", zap.String("to", m.To))
		}
	}
}
