package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"device-telemetry/internal/device"

	"github.com/segmentio/kafka-go"
)

var (
	ErrEncodeSnapshot = errors.New("error encoding snapshot")
	ErrWriteMessage   = errors.New("error writing message")
)

const DefaultPublishTimeout = 5 * time.Second

type PublisherConfig struct {
	Brokers []string
	Topic   string
	// Timeout bounds a single publish. Defaults to DefaultPublishTimeout.
	Timeout time.Duration
}

// SnapshotPublisher forwards every committed snapshot to the history topic.
type SnapshotPublisher struct {
	writer  Writer
	timeout time.Duration
}

func NewSnapshotPublisher(cfg PublisherConfig) *SnapshotPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &SnapshotPublisher{writer: NewWriter(cfg.Brokers, cfg.Topic), timeout: timeout}
}

func (p *SnapshotPublisher) SnapshotCommitted(ctx context.Context, s device.Snapshot) error {
	const fn = "SnapshotPublisher:SnapshotCommitted"
	record, err := NewSnapshotRecord(s)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEncodeSnapshot, err)
	}
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEncodeSnapshot, err)
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(s.DeviceID), Value: out}); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.DebugContext(ctx, "Published snapshot", "device_id", s.DeviceID, "snapshot_id", s.ID)
	return nil
}

func (p *SnapshotPublisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing snapshot publisher...")
	if err := p.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing writer", "error", err)
	}
}
