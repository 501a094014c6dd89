package activity

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Notifier hands an event to the activity pipeline. An error means the
// event could not be handed off and the caller must fail its operation.
type Notifier interface {
	Notify(ctx context.Context, event *Event) error
}

// WatermillNotifier publishes events on a watermill publisher.
type WatermillNotifier struct {
	pub message.Publisher
}

func NewWatermillNotifier(pub message.Publisher) *WatermillNotifier {
	return &WatermillNotifier{pub: pub}
}

// Notify publishes the event as a JSON message on Topic.
func (n *WatermillNotifier) Notify(_ context.Context, event *Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.pub.Publish(Topic, message.NewMessage(watermill.NewUUID(), payload))
}
