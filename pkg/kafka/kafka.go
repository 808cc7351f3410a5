package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

const (
	LibraryEventsTopic = "library-events"
	StatsConsumerGroup = "library-stats"
)

type EventType string

const (
	EventBookBorrowed EventType = "book.borrowed"
	EventBookReturned EventType = "book.returned"
	EventBookOverdue  EventType = "book.overdue"
	EventFeePaid      EventType = "fee.paid"
	EventFeeRefunded  EventType = "fee.refunded"
)

type Event struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	PatronID      string    `json:"patronId,omitempty"`
	BookID        int       `json:"bookId,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewEvent(typ EventType, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: occurredAt.UTC(),
	}
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Return.Errors = false

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume keeps the group member joined until ctx is done or the group is closed.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

func NewPublisher(producer sarama.SyncProducer, topic string) Publisher {
	return &publisherImpl{
		producer: producer,
		topic:    topic,
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// Publish keys messages by patron so one patron's events stay ordered.
func (p *publisherImpl) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PatronID),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
