package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// EscrowEventPublisher writes escrow events to a single Kafka topic, keyed
// by consumer id so one party's events stay ordered.
type EscrowEventPublisher struct {
	writer *kafka.Writer
}

func NewEscrowEventPublisher(brokers []string, topic string) *EscrowEventPublisher {
	return &EscrowEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *EscrowEventPublisher) PublishEscrowEvent(event domain.EscrowEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ConsumerID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *EscrowEventPublisher) Close() error {
	return p.writer.Close()
}
