package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"ventas-dashboard/internal/messaging"
)

type kafkaPublisher struct {
	writer *kafkaGo.Writer
	logger *log.Logger
}

// Publisher is a messaging.Publisher that also releases its connections.
type Publisher interface {
	messaging.Publisher
	Close() error
}

// NewPublisher creates a Kafka publisher. The topic is chosen per message.
func NewPublisher(brokers []string, logger *log.Logger) Publisher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Balancer:               &kafkaGo.LeastBytes{},
			RequiredAcks:           kafkaGo.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	msg, err := encodeMessage(topic, key, event)
	if err != nil {
		return err
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		k.logger.Printf("kafka: publish topic=%s key=%s error=%v", topic, key, err)
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	k.logger.Printf("kafka: published topic=%s key=%s bytes=%d", topic, key, len(msg.Value))
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func encodeMessage(topic, key string, event any) (kafkaGo.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}
