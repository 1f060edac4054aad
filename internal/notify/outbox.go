package notify

import (
	"context"
	"log"
	"time"

	"github.com/idir2023/argan-project/internal/orders"
	"github.com/segmentio/kafka-go"
)

// EventSource is the slice of the order repository the publisher needs.
type EventSource interface {
	PendingEvents(ctx context.Context, limit int) ([]orders.Event, error)
	MarkPublished(ctx context.Context, eventID string) error
}

// OutboxPublisher drains pending order events to Kafka on a ticker.
// Events that fail to publish stay pending and are retried on the next
// tick.
type OutboxPublisher struct {
	tick   time.Duration
	source EventSource
	writer *kafka.Writer
}

func NewOutboxPublisher(source EventSource, brokers ...string) *OutboxPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "order-events",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &OutboxPublisher{tick: time.Second, source: source, writer: w}
}

func (p *OutboxPublisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.processPendingEvents(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *OutboxPublisher) processPendingEvents(ctx context.Context) {
	events, err := p.source.PendingEvents(ctx, 100)
	if err != nil {
		log.Printf("failed to fetch events %v", err)
		return
	}

	for _, event := range events {
		errPublish := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.OrderID),
			Value: event.Payload,
		})
		if errPublish != nil {
			log.Printf("failed to publish event id = %v with error %v", event.ID, errPublish)
			continue
		}

		errMark := p.source.MarkPublished(ctx, event.ID)
		if errMark != nil {
			log.Printf("failed to mark event as published id = %v with error %v", event.ID, errMark)
			continue
		}
	}
}

func (p *OutboxPublisher) Close() error {
	return p.writer.Close()
}
