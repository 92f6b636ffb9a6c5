package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"device-telemetry/internal/cache"
	"device-telemetry/internal/device"
)

const DefaultDebounce = time.Minute

var ErrEmptyDeviceID = fmt.Errorf("%w: device id is required", device.ErrValidation)

type Repository interface {
	UpsertDevice(ctx context.Context, r device.Record) error
	LoadDevice(ctx context.Context, deviceID string) (device.Record, bool, error)
	ListDevices(ctx context.Context) ([]device.Record, error)
}

// History is the per-device partition store.
type History interface {
	Append(ctx context.Context, deviceID string, s device.Snapshot) (int64, error)
	Latest(ctx context.Context, deviceID string) (device.Snapshot, bool, error)
	Range(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error)
}

// Notifier is told about every snapshot the engine commits.
type Notifier interface {
	SnapshotCommitted(ctx context.Context, s device.Snapshot) error
}

type Config struct {
	Repository Repository
	History    History
	// Cache defaults to an empty cache.StateCache.
	Cache    cache.Cache
	Notifier Notifier
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Debounce is the minimum whole interval between two debounced
	// snapshots. Defaults to one minute.
	Debounce time.Duration
}

type Engine struct {
	repo     Repository
	history  History
	cache    cache.Cache
	notifier Notifier
	clock    func() time.Time
	debounce time.Duration
	locks    *keyedMutex
}

type ActuatorStatus struct {
	DeviceID  string       `json:"device_id"`
	Name      *string      `json:"name"`
	IsOnline  bool         `json:"is_online"`
	Status    device.Value `json:"status"`
	UpdatedAt time.Time    `json:"last_updated"`
}

func New(cfg Config) *Engine {
	e := &Engine{
		repo:     cfg.Repository,
		history:  cfg.History,
		cache:    cfg.Cache,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
		debounce: cfg.Debounce,
		locks:    newKeyedMutex(),
	}
	if e.cache == nil {
		e.cache = cache.New()
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.debounce <= 0 {
		e.debounce = DefaultDebounce
	}
	return e
}

// ApplyUpdate writes the device's new current state and, when the debounce
// interval has passed since the latest snapshot, appends a snapshot of it.
// If the state write succeeds but the snapshot does not, the updated record
// is returned together with an error wrapping device.ErrHistoryCommit.
func (e *Engine) ApplyUpdate(ctx context.Context, deviceID string, upd device.Update) (device.Record, bool, error) {
	const fn = "Engine:ApplyUpdate"
	if deviceID == "" {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}
	if err := upd.Payload.Validate(); err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	if upd.Type != nil {
		if _, err := device.ParseType(string(*upd.Type)); err != nil {
			return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
		}
	}

	// Deferred first so it runs after the device lock is released.
	var committed *device.Snapshot
	defer func() { e.notify(ctx, committed) }()

	e.lock(deviceID)
	defer e.unlock(ctx, deviceID)

	current, exists, err := e.load(ctx, deviceID)
	if err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	now := e.now()
	next, err := apply(current, exists, deviceID, upd, now)
	if err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	if err := e.repo.UpsertDevice(ctx, next); err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	e.cache.Set(next)

	latest, found, err := e.history.Latest(ctx, deviceID)
	if err != nil {
		return next, false, fmt.Errorf("%s:%w:%w", fn, device.ErrHistoryCommit, err)
	}
	if found && !e.due(latest.RecordedAt, now) {
		return next, false, nil
	}
	snap, err := e.commit(ctx, next, now)
	if err != nil {
		return next, false, fmt.Errorf("%s:%w:%w", fn, device.ErrHistoryCommit, err)
	}
	committed = &snap
	return next, true, nil
}

// ApplyPartialActuatorUpdate merges payload into an existing actuator and
// always appends a snapshot of the result.
func (e *Engine) ApplyPartialActuatorUpdate(ctx context.Context, deviceID string, payload device.Payload) (device.Record, error) {
	const fn = "Engine:ApplyPartialActuatorUpdate"
	if deviceID == "" {
		return device.Record{}, fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}
	if err := payload.Validate(); err != nil {
		return device.Record{}, fmt.Errorf("%s:%w", fn, err)
	}

	var committed *device.Snapshot
	defer func() { e.notify(ctx, committed) }()

	e.lock(deviceID)
	defer e.unlock(ctx, deviceID)

	current, exists, err := e.load(ctx, deviceID)
	if err != nil {
		return device.Record{}, fmt.Errorf("%s:%w", fn, err)
	}
	if !exists {
		return device.Record{}, fmt.Errorf("%s:%w: %s", fn, device.ErrNotFound, deviceID)
	}
	if current.Type != device.Actuator {
		return device.Record{}, fmt.Errorf("%s:%w: %s", fn, device.ErrNotActuator, deviceID)
	}

	now := e.now()
	next := current.Clone()
	next.Payload = current.Payload.Merge(payload)
	next.IsOnline = true
	next.UpdatedAt = now
	if err := e.repo.UpsertDevice(ctx, next); err != nil {
		return device.Record{}, fmt.Errorf("%s:%w", fn, err)
	}
	e.cache.Set(next)

	snap, err := e.commit(ctx, next, now)
	if err != nil {
		return next, fmt.Errorf("%s:%w:%w", fn, device.ErrHistoryCommit, err)
	}
	committed = &snap
	return next, nil
}

// ForceSnapshot appends a snapshot of the device's current state regardless
// of the debounce interval.
func (e *Engine) ForceSnapshot(ctx context.Context, deviceID string) (device.Snapshot, error) {
	const fn = "Engine:ForceSnapshot"
	if deviceID == "" {
		return device.Snapshot{}, fmt.Errorf("%s:%w", fn, ErrEmptyDeviceID)
	}

	var committed *device.Snapshot
	defer func() { e.notify(ctx, committed) }()

	e.lock(deviceID)
	defer e.unlock(ctx, deviceID)

	current, exists, err := e.load(ctx, deviceID)
	if err != nil {
		return device.Snapshot{}, fmt.Errorf("%s:%w", fn, err)
	}
	if !exists {
		return device.Snapshot{}, fmt.Errorf("%s:%w: %s", fn, device.ErrNotFound, deviceID)
	}
	snap, err := e.commit(ctx, current, e.now())
	if err != nil {
		return device.Snapshot{}, fmt.Errorf("%s:%w:%w", fn, device.ErrHistoryCommit, err)
	}
	committed = &snap
	return snap, nil
}

func (e *Engine) GetCurrent(ctx context.Context, deviceID string) (device.Record, bool, error) {
	const fn = "Engine:GetCurrent"
	if deviceID == "" {
		return device.Record{}, false, nil
	}
	r, ok, err := e.load(ctx, deviceID)
	if err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	return r, ok, nil
}

func (e *Engine) GetHistory(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error) {
	const fn = "Engine:GetHistory"
	snaps, err := e.history.Range(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return snaps, nil
}

func (e *Engine) ListDevices(ctx context.Context) ([]device.Record, error) {
	const fn = "Engine:ListDevices"
	records, err := e.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return records, nil
}

func (e *Engine) ListActuators(ctx context.Context) ([]ActuatorStatus, error) {
	const fn = "Engine:ListActuators"
	records, err := e.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	out := []ActuatorStatus{}
	for _, r := range records {
		if r.Type == device.Actuator {
			out = append(out, statusOf(r))
		}
	}
	return out, nil
}

// ActuatorStatus reports the position of an actuator as stored under its
// "on" payload key. Unknown devices and non-actuators are not found.
func (e *Engine) ActuatorStatus(ctx context.Context, deviceID string) (ActuatorStatus, error) {
	const fn = "Engine:ActuatorStatus"
	r, ok, err := e.load(ctx, deviceID)
	if err != nil {
		return ActuatorStatus{}, fmt.Errorf("%s:%w", fn, err)
	}
	if !ok || r.Type != device.Actuator {
		return ActuatorStatus{}, fmt.Errorf("%s:%w: actuator %s", fn, device.ErrNotFound, deviceID)
	}
	return statusOf(r), nil
}

// statusOf reports the raw "on" value, so {"on":"off"} stays a string.
// A missing key reads as false.
func statusOf(r device.Record) ActuatorStatus {
	status, ok := r.Payload["on"]
	if !ok {
		status = device.Bool(false)
	}
	return ActuatorStatus{
		DeviceID:  r.DeviceID,
		Name:      r.Name,
		IsOnline:  r.IsOnline,
		Status:    status,
		UpdatedAt: r.UpdatedAt,
	}
}

func apply(current device.Record, exists bool, deviceID string, upd device.Update, now time.Time) (device.Record, error) {
	var next device.Record
	if exists {
		if upd.Type != nil && *upd.Type != current.Type {
			return device.Record{}, fmt.Errorf("%w: %s is %s", device.ErrTypeConflict, deviceID, current.Type)
		}
		next = current.Clone()
	} else {
		next = device.Record{DeviceID: deviceID, Type: device.Sensor, CreatedAt: now}
		if upd.Type != nil {
			next.Type = *upd.Type
		}
	}
	if upd.Name != nil {
		name := *upd.Name
		next.Name = &name
	}
	if next.Type == device.Actuator {
		next.Payload = current.Payload.Merge(upd.Payload)
	} else {
		next.Payload = upd.Payload.Clone()
	}
	// An update is evidence of liveness; upd.IsOnline cannot take a device offline.
	next.IsOnline = true
	next.UpdatedAt = now
	return next, nil
}

// due compares whole debounce intervals: with a one minute interval 59s is
// not due and 60s is.
func (e *Engine) due(last, now time.Time) bool {
	elapsed := now.Sub(last)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return int64(elapsed/e.debounce) >= 1
}

func (e *Engine) commit(ctx context.Context, r device.Record, at time.Time) (device.Snapshot, error) {
	snap := device.SnapshotOf(r, at)
	id, err := e.history.Append(ctx, r.DeviceID, snap)
	if err != nil {
		return device.Snapshot{}, err
	}
	snap.ID = id
	slog.DebugContext(ctx, "Snapshot committed", "device_id", r.DeviceID, "snapshot_id", id)
	return snap, nil
}

// notify must run after the device lock is released.
func (e *Engine) notify(ctx context.Context, snap *device.Snapshot) {
	if snap == nil || e.notifier == nil {
		return
	}
	if err := e.notifier.SnapshotCommitted(ctx, *snap); err != nil {
		slog.WarnContext(ctx, "Snapshot notification failed", "device_id", snap.DeviceID, "error", err)
	}
}

func (e *Engine) load(ctx context.Context, deviceID string) (device.Record, bool, error) {
	if r, ok := e.cache.Get(deviceID); ok {
		return r, true, nil
	}
	r, ok, err := e.repo.LoadDevice(ctx, deviceID)
	if err != nil || !ok {
		return device.Record{}, false, err
	}
	e.cache.Set(r)
	return r, true, nil
}

func (e *Engine) now() time.Time {
	return e.clock().UTC().Truncate(time.Microsecond)
}

func (e *Engine) lock(deviceID string) {
	e.locks.Lock(deviceID)
}

func (e *Engine) unlock(ctx context.Context, deviceID string) {
	if err := e.locks.Unlock(deviceID); err != nil {
		slog.ErrorContext(ctx, "Device lock released twice", "device_id", deviceID, "error", err)
	}
}
