// Package sweeper periodically snapshots every known device regardless of
// the debounce interval, so quiet devices still get regular history rows.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"device-telemetry/internal/device"
	"device-telemetry/internal/worker"
)

var (
	ErrListDevices   = errors.New("error listing devices")
	ErrForceSnapshot = errors.New("error snapshotting device")
)

type snapshotter interface {
	ListDevices(ctx context.Context) ([]device.Record, error)
	ForceSnapshot(ctx context.Context, deviceID string) (device.Snapshot, error)
}

type Config struct {
	Interval time.Duration
	Engine   snapshotter
}

type Sweeper struct {
	worker *worker.Worker
	engine snapshotter
	ticker *time.Ticker
}

// New returns a sweeper that runs every cfg.Interval. The interval must be
// positive.
func New(cfg Config) *Sweeper {
	sweeper := &Sweeper{
		engine: cfg.Engine,
		ticker: time.NewTicker(cfg.Interval),
	}

	sweeper.worker = worker.New(worker.Config{
		Name:      "sweeper-worker",
		Processor: sweeper,
	})
	return sweeper
}

func (s *Sweeper) Run(ctx context.Context) {
	s.worker.Run(ctx)
}

func (s *Sweeper) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing sweeper resources...")
	s.ticker.Stop()
}

// Process waits for the next tick and sweeps once.
func (s *Sweeper) Process(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
	}
	_, err := s.Sweep(ctx)
	return err
}

// Sweep snapshots every device and returns how many snapshots were
// committed. A failing device does not stop the others.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	const fn = "Sweeper:Sweep"
	records, err := s.engine.ListDevices(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrListDevices, err)
	}

	var (
		saved int
		errs  []error
	)
	for _, r := range records {
		if _, err := s.engine.ForceSnapshot(ctx, r.DeviceID); err != nil {
			errs = append(errs, fmt.Errorf("%s:%w:%s:%w", fn, ErrForceSnapshot, r.DeviceID, err))
			continue
		}
		saved++
	}
	slog.InfoContext(ctx, "Saved device history", "saved", saved, "failed", len(errs))
	return saved, errors.Join(errs...)
}
