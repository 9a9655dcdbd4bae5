package eventbus

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher writes one info line per event. It never fails.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		p.logger.Info("Domain event",
			zap.String("name", e.EventName()),
			zap.String("aggregate_id", e.AggregateID().String()),
			zap.Time("occurred_at", e.OccurredAt()),
			zap.Any("payload", e),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error { return nil }
