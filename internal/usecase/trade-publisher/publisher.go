package tradepublisher

import (
	"context"

	"github.com/segmentio/kafka-go"

	tradepublisherv1 "github.com/luca-simonetti/exchange-core/internal/domain/trade-publisher/v1"
	"github.com/luca-simonetti/exchange-core/pkg/config"
	"github.com/luca-simonetti/exchange-core/pkg/errors"
	"github.com/luca-simonetti/exchange-core/pkg/logger"
)

// Publisher writes trade events to the outbound Kafka topic.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      *logger.Logger
}

// NewPublisher creates a new Kafka publisher for trade events.
func NewPublisher(cfg config.TradePublisherConfig, log *logger.Logger) *Publisher {
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// PublishTradeEvent publishes a trade event to the outbound topic.
func (p *Publisher) PublishTradeEvent(ctx context.Context, ev *tradepublisherv1.TradeEventPayload) error {
	msg := kafka.Message{
		Value: tradepublisherv1.ToBytes(ev),
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "tradeEvent", Value: ev},
		)
		return errors.NewTracer("failed to publish trade event").Wrap(err)
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
