package partition

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"device-telemetry/internal/device"

	"golang.org/x/sync/singleflight"
)

var (
	ErrEmptyDeviceID = fmt.Errorf("%w: device id is required", device.ErrValidation)
	ErrInvalidLimit  = fmt.Errorf("%w: limit must be a positive integer", device.ErrValidation)
	ErrEnsureFailed  = errors.New("ensure partition failed")
	ErrAppendFailed  = errors.New("append failed")
	ErrReadFailed    = errors.New("read failed")
)

// Backend is the durable storage behind the partition store. CreatePartition
// must be an atomic create-if-absent.
type Backend interface {
	CreatePartition(ctx context.Context, deviceID string) error
	InsertSnapshot(ctx context.Context, deviceID string, s device.Snapshot) (int64, error)
	LatestSnapshot(ctx context.Context, deviceID string) (device.Snapshot, bool, error)
	LoadSnapshots(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error)
}

type Config struct {
	Backend Backend
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Store keeps one append-only snapshot log per device, created lazily on
// first append.
type Store struct {
	backend Backend
	now     func() time.Time
	known   sync.Map
	group   singleflight.Group
}

func New(cfg Config) *Store {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Store{
		backend: cfg.Backend,
		now:     now,
	}
}

func (s *Store) EnsurePartition(ctx context.Context, deviceID string) error {
	const fn = "Partition:EnsurePartition"
	if deviceID == "" {
		return fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}
	if _, ok := s.known.Load(deviceID); ok {
		return nil
	}
	// Callers share one creation, so one caller cancelling must not fail
	// the others.
	shared := context.WithoutCancel(ctx)
	_, err, _ := s.group.Do(deviceID, func() (any, error) {
		if _, ok := s.known.Load(deviceID); ok {
			return nil, nil
		}
		if err := s.backend.CreatePartition(shared, deviceID); err != nil {
			return nil, err
		}
		s.known.Store(deviceID, struct{}{})
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEnsureFailed, err)
	}
	return nil
}

// Append stores snap in the device's partition and returns its sequence id.
// A zero RecordedAt is replaced with the store clock.
func (s *Store) Append(ctx context.Context, deviceID string, snap device.Snapshot) (int64, error) {
	const fn = "Partition:Append"
	if err := s.EnsurePartition(ctx, deviceID); err != nil {
		return 0, fmt.Errorf("%s:%w", fn, err)
	}
	snap.DeviceID = deviceID
	if snap.RecordedAt.IsZero() {
		snap.RecordedAt = s.now()
	}
	// Postgres keeps microseconds; truncate so every backend reads back what it stored.
	snap.RecordedAt = snap.RecordedAt.UTC().Truncate(time.Microsecond)
	if snap.Payload == nil {
		snap.Payload = device.Payload{}
	}
	id, err := s.backend.InsertSnapshot(ctx, deviceID, snap)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrAppendFailed, err)
	}
	return id, nil
}

func (s *Store) Latest(ctx context.Context, deviceID string) (device.Snapshot, bool, error) {
	const fn = "Partition:Latest"
	if deviceID == "" {
		return device.Snapshot{}, false, fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}
	snap, ok, err := s.backend.LatestSnapshot(ctx, deviceID)
	if err != nil {
		return device.Snapshot{}, false, fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
	}
	return snap, ok, nil
}

// Range returns up to limit snapshots, newest first. A device without a
// partition has an empty history.
func (s *Store) Range(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error) {
	const fn = "Partition:Range"
	if deviceID == "" {
		return nil, fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%s:%w", fn, ErrInvalidLimit)
	}
	snaps, err := s.backend.LoadSnapshots(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadFailed, err)
	}
	if snaps == nil {
		snaps = []device.Snapshot{}
	}
	return snaps, nil
}
