package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

func TestNotifyPeerUpdate(t *testing.T) {
	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 8}, watermill.NopLogger{})
	defer ps.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := ps.Subscribe(ctx, TopicPeerUpdates)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	n := NewWatermillNotifier(ps)
	update := &PeerUpdate{
		LocationID:   7,
		DeviceID:     42,
		PublicKey:    "pubkey-AAA",
		PresharedKey: "psk-one",
		WireguardIPs: []string{"10.6.0.4"},
	}
	if err := n.NotifyPeerUpdate(context.Background(), update); err != nil {
		t.Fatalf("NotifyPeerUpdate: %v", err)
	}

	select {
	case msg := <-msgs:
		msg.Ack()
		var got PeerUpdate
		if err := json.Unmarshal(msg.Payload, &got); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !reflect.DeepEqual(got, *update) {
			t.Errorf("received update = %+v, want %+v", got, *update)
		}
	case <-time.After(time.Second):
		t.Fatal("no peer update received")
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(string, ...*message.Message) error {
	return errors.New("publish failed")
}
func (failingPublisher) Close() error { return nil }

func TestNotifyPeerUpdatePublishError(t *testing.T) {
	n := NewWatermillNotifier(failingPublisher{})
	if err := n.NotifyPeerUpdate(context.Background(), &PeerUpdate{}); err == nil {
		t.Error("NotifyPeerUpdate should surface publish errors")
	}
}
