package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"device-telemetry/internal/device"
)

type Cache interface {
	Get(deviceID string) (device.Record, bool)
	Set(record device.Record)
	Delete(deviceID string)
	Len() int
	Hydrate(ctx context.Context, loader Loader) error
	Dump()
}

// Loader supplies every stored record at start-up.
type Loader interface {
	ListDevices(ctx context.Context) ([]device.Record, error)
}

// StateCache owns the current record of every known device. Records are
// copied on the way in and out so callers never share payload maps.
type StateCache struct {
	mu    sync.RWMutex
	store map[string]device.Record
}

func New() *StateCache {
	return &StateCache{
		store: make(map[string]device.Record),
	}
}

func (c *StateCache) Get(deviceID string) (device.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, exists := c.store[deviceID]
	if !exists {
		return device.Record{}, false
	}
	return r.Clone(), true
}

func (c *StateCache) Set(record device.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[record.DeviceID] = record.Clone()
}

func (c *StateCache) Delete(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, deviceID)
}

func (c *StateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *StateCache) Dump() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for deviceID, r := range c.store {
		slog.Debug("Cache Dump", "device_id", deviceID, "device_type", r.Type, "updated_at", r.UpdatedAt)
	}
}

// Blocking operation
func (c *StateCache) Hydrate(ctx context.Context, loader Loader) error {
	const fn = "Cache:Hydrate"
	slog.InfoContext(ctx, "Starting cache hydration...")
	records, err := loader.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range records {
		c.store[r.DeviceID] = r.Clone()
	}
	slog.InfoContext(ctx, "Cache hydration complete", "devices", len(records))
	return nil
}
