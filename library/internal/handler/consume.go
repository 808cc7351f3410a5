package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultRetryDelay = time.Second

type recordEvent func(ctx context.Context, event kafka.Event) error

// Consumer feeds library events into the activity stats.
type Consumer struct {
	record     recordEvent
	retryDelay time.Duration
	log        *zap.Logger
}

func NewConsumer(record recordEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		record:     record,
		retryDelay: defaultRetryDelay,
		log:        log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("json.Unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.record(session.Context(), event); err != nil {
				// Later messages must not be marked past this offset, so the
				// session ends here and the group resumes from the last commit.
				consumer.log.Error("consumer.record", zap.Int64("offset", message.Offset), zap.Error(err))
				consumer.backoff(session.Context())
				return errors.Wrapf(err, "record event at offset %d", message.Offset)
			}

			consumer.log.Debug("Message claimed:", zap.String("type", string(event.Type)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) backoff(ctx context.Context) {
	if consumer.retryDelay <= 0 {
		return
	}
	t := time.NewTimer(consumer.retryDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
