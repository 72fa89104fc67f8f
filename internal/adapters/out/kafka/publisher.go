// Package kafka publishes outbox notifications to the message broker. The
// dispatch job needs a synchronous result to decide between marking a
// notification sent and counting a failed attempt, so writes are not
// fire-and-forget.
package kafka

import (
	"context"
	"strings"

	"sokoni/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// Topics maps event type prefixes to broker topics.
type Topics struct {
	Orders     string
	Deliveries string
}

// Publisher implements ports.EventPublisher on a kafka-go writer.
type Publisher struct {
	writer *kafka.Writer
	topics Topics
}

// NewPublisher creates a publisher for the given brokers. The writer
// requires acknowledgement from all replicas; a notification is only marked
// sent once the broker has it.
func NewPublisher(brokers []string, topics Topics) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		topics: topics,
	}
}

// Publish writes the notification's payload to the topic selected by its
// event prefix, keyed by recipient so one user's notifications stay ordered.
func (p *Publisher) Publish(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topicFor(aggregate.EventType()),
		Key:   []byte(aggregate.RecipientID().String()),
		Value: aggregate.Payload(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(aggregate.EventType())},
			{Key: "recipient-role", Value: []byte(aggregate.RecipientRole().String())},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) topicFor(event notification.Event) string {
	if strings.HasPrefix(string(event), "delivery.") {
		return p.topics.Deliveries
	}
	return p.topics.Orders
}
