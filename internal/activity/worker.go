package activity

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Repository defines persistence for activity log entries. Implemented by
// the repository subpackage.
type Repository interface {
	Create(ctx context.Context, event *Event) error
}

// Worker consumes published activity events, persists them and forwards
// them to the optional streaming sink. Persistence failures are logged and
// the message is acked anyway; the activity log is best-effort once an
// event has left the request path.
type Worker struct {
	sub       message.Subscriber
	repo      Repository
	forwarder Forwarder
	log       *zap.Logger
}

func NewWorker(sub message.Subscriber, repo Repository, forwarder Forwarder, log *zap.Logger) *Worker {
	return &Worker{sub: sub, repo: repo, forwarder: forwarder, log: log}
}

// Run consumes events until ctx is cancelled or the subscription closes.
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.sub.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}
	for msg := range msgs {
		w.handle(ctx, msg)
	}
	return nil
}

func (w *Worker) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		w.log.Error("activity: dropping malformed event", zap.Error(err))
		return
	}
	if err := w.repo.Create(ctx, &event); err != nil {
		w.log.Error("activity: persist failed",
			zap.String("event_id", event.ID), zap.Error(err))
	}
	if w.forwarder != nil {
		if err := w.forwarder.Forward(ctx, &event); err != nil {
			w.log.Warn("activity: forward failed",
				zap.String("event_id", event.ID), zap.Error(err))
		}
	}
}
