package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

type EventHandlerFunc func(AuditEvent)

type Consumer struct {
	reader  *kafka.Reader
	handler EventHandlerFunc
}

func NewConsumer(brokerAddr, topic, groupID string, handler EventHandlerFunc) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{brokerAddr},
		Topic:   topic,
		GroupID: groupID,
	})
	return &Consumer{
		reader:  reader,
		handler: handler,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		defer c.reader.Close()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Kafka consumer stopped")
				return
			default:
				m, err := c.reader.ReadMessage(ctx)
				if err != nil {
					slog.Error("Kafka read error", "error", err)
					continue
				}

				var event AuditEvent
				if err := json.Unmarshal(m.Value, &event); err != nil {
					slog.Error("Kafka JSON decode error", "error", err)
					continue
				}

				c.handler(event)
			}
		}
	}()
}
