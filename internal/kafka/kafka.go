// Package kafka holds the message schemas and client seams shared by the
// Kafka ingest processor and the snapshot publisher.
package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// BatchTimeout caps how long a partly filled batch waits before it is
	// sent. kafka-go's own default is one second.
	BatchTimeout = 10 * time.Millisecond
	WriteTimeout = 5 * time.Second
)

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ReaderConfig struct {
	Brokers []string
	GroupID string
	Topic   string
}

// NewReader returns a consumer-group reader. Offsets are committed
// automatically as messages are read.
func NewReader(cfg ReaderConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
	})
}

// NewWriter returns a writer that partitions by message key, so every
// message for a device lands on the same partition.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           BatchTimeout,
		WriteTimeout:           WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}
