package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"device-telemetry/internal/device"
	k "device-telemetry/internal/kafka"
	"device-telemetry/internal/validation"
	"device-telemetry/internal/worker"
)

var (
	ErrReadMessage    = errors.New("error reading message")
	ErrInvalidMessage = errors.New("invalid message")
	ErrApplyUpdate    = errors.New("error applying update")
)

type deviceUpdater interface {
	ApplyUpdate(ctx context.Context, deviceID string, upd device.Update) (device.Record, bool, error)
}

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	Engine          deviceUpdater
}

// Ingest applies device state messages consumed from Kafka.
type Ingest struct {
	worker *worker.Worker
	reader k.Reader
	engine deviceUpdater
}

func New(cfg Config) *Ingest {
	ingest := &Ingest{
		reader: k.NewReader(k.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.ConsumerGroupID,
			Topic:   cfg.ConsumerTopic,
		}),
		engine: cfg.Engine,
	}

	ingest.worker = worker.New(worker.Config{
		Name:      "ingest-worker",
		Processor: ingest,
	})
	return ingest
}

func (i *Ingest) Run(ctx context.Context) {
	i.worker.Run(ctx)
}

func (i *Ingest) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing ingest resources...")
	if err := i.reader.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing reader", "error", err)
	}
}

// Process reads one message and applies it. The message key, when set, is
// the device id. Auto-commit is active, so a message that fails here is not
// redelivered.
func (i *Ingest) Process(ctx context.Context) error {
	const fn = "Ingest:Process"
	m, err := i.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	deviceID, upd, err := validation.DecodeUpdate(m.Value, string(m.Key))
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInvalidMessage, err)
	}

	_, committed, err := i.engine.ApplyUpdate(ctx, deviceID, upd)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrApplyUpdate, err)
	}
	slog.InfoContext(ctx, "Applied device update", "device_id", deviceID, "committed", committed)
	return nil
}
