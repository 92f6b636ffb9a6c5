package worker

import (
	"context"
	"errors"
	"log/slog"
)

type Config struct {
	Name      string
	Processor Processor
}

// Processor handles one unit of work per call. Returned errors are logged
// and the loop continues.
type Processor interface {
	Process(ctx context.Context) error
}

type Worker struct {
	name      string
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
	}
}

func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		default:
			if err := w.processor.Process(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.ErrorContext(ctx, "Error processing", "worker", w.name, "error", err)
			}
		}
	}
}
