// Package events publishes committed loan transitions to Kafka so the
// notice-delivery channel (and anything else downstream) can consume them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bookease-backend/internal/domain/event"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher for the given brokers and topic.
// Messages are keyed by book id so per-book ordering is preserved.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by key for per-book ordering
		RequiredAcks: kafka.RequireAll,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}), // silence default logger
		ErrorLogger:  kafka.LoggerFunc(log.Printf),
	}
	return &KafkaPublisher{writer: w}, nil
}

func (p *KafkaPublisher) PublishLoanEvent(ctx context.Context, ev event.LoanEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(ev.BookID),
		Value: payload,
		Time:  ev.At,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }
