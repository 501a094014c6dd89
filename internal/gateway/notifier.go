package gateway

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Notifier delivers peer updates to the gateways of a location. Delivery is
// one-way; an error means the update could not be handed off and the caller
// must fail its operation.
type Notifier interface {
	NotifyPeerUpdate(ctx context.Context, update *PeerUpdate) error
}

// WatermillNotifier publishes peer updates on a watermill publisher.
type WatermillNotifier struct {
	pub message.Publisher
}

func NewWatermillNotifier(pub message.Publisher) *WatermillNotifier {
	return &WatermillNotifier{pub: pub}
}

// NotifyPeerUpdate publishes the update as a JSON message on TopicPeerUpdates.
func (n *WatermillNotifier) NotifyPeerUpdate(_ context.Context, update *PeerUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return n.pub.Publish(TopicPeerUpdates, message.NewMessage(watermill.NewUUID(), payload))
}
