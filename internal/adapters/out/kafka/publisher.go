package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher dials brokers with a synchronous producer that waits
// for the in-sync replicas to acknowledge each batch.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewOrderEventPublisherWithProducer(producer, topic, logger)
}

// NewOrderEventPublisherWithProducer wraps an existing producer.
func NewOrderEventPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) (*OrderEventPublisher, error) {
	if topic == "" {
		return nil, ErrTopicIsRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher", "topic", topic),
	}, nil
}

func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, events []order.ChangedEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(messageFromEvent(e))
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.EventID, err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(e.OrderID.String()),
			Value: sarama.ByteEncoder(payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte("reason"), Value: []byte(e.Reason)},
			},
			Timestamp: e.OccurredAt,
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("send %d order events: %w", len(messages), err)
	}

	p.logger.DebugContext(ctx, "Order events published", "count", len(messages))
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderChanged(context.Context, []order.ChangedEvent) error {
	return nil
}
