package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Forwarder streams activity events to an external sink.
type Forwarder interface {
	Forward(ctx context.Context, event *Event) error
	Close() error
}

// KafkaForwarder implements Forwarder using segmentio/kafka-go.
type KafkaForwarder struct {
	writer *kafka.Writer
}

// NewKafkaForwarder creates a Kafka forwarder that writes activity events to
// the given topic. Returns nil when brokers or topic are unset; a nil
// forwarder is a no-op. Call Close when shutting down.
func NewKafkaForwarder(brokers []string, topic string) *KafkaForwarder {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &KafkaForwarder{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Forward serializes the event as JSON and writes it to the Kafka topic.
// A short timeout keeps slow Kafka from stalling the activity worker.
func (f *KafkaForwarder) Forward(ctx context.Context, event *Event) error {
	if f == nil || f.writer == nil || event == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return f.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(event.Context.Username),
		Value: payload,
	})
}

// Close closes the Kafka writer. Safe to call on a nil forwarder.
func (f *KafkaForwarder) Close() error {
	if f == nil || f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
