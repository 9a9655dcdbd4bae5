// Package eventbus delivers committed domain events to Kafka, or to the log
// when no broker is configured.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the JSON value of every message. The message key is the
// aggregate id, so events of one parcel or rider land on one partition in
// order.
type Envelope struct {
	Name        string             `json:"name"`
	AggregateID string             `json:"aggregateId"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Payload     kernel.DomainEvent `json:"payload"`
}

type KafkaPublisher struct {
	writer Writer
	logger *zap.Logger
}

// NewKafkaPublisher writes to topic on brokerAddr. Writes are synchronous and
// not retried beyond the writer's own attempts.
func NewKafkaPublisher(brokerAddr, topic string, logger *zap.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokerAddr),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  1,
	}
	return NewKafkaPublisherWithWriter(w, logger)
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{writer: w, logger: logger.Named("kafka")}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(Envelope{
			Name:        e.EventName(),
			AggregateID: e.AggregateID().String(),
			OccurredAt:  e.OccurredAt().UTC(),
			Payload:     e,
		})
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID().String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event-name", Value: []byte(e.EventName())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errs.NewUpstreamError("kafka", err)
	}

	p.logger.Debug("Published events", zap.Int("count", len(msgs)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
