package db

import (
	"encoding/json"
	"fmt"
	"time"

	"device-telemetry/internal/device"
)

type DeviceRow struct {
	DeviceID   string    `db:"device_id"`
	Name       *string   `db:"name"`
	DeviceType string    `db:"device_type"`
	IsOnline   bool      `db:"is_online"`
	Payload    []byte    `db:"payload"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type SnapshotRow struct {
	ID         int64     `db:"id"`
	DeviceID   string    `db:"device_id"`
	Payload    []byte    `db:"payload"`
	DeviceType string    `db:"device_type"`
	IsOnline   bool      `db:"is_online"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (r DeviceRow) Record() (device.Record, error) {
	rec := device.Record{
		DeviceID:  r.DeviceID,
		Name:      r.Name,
		Type:      device.Type(r.DeviceType),
		IsOnline:  r.IsOnline,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if err := json.Unmarshal(r.Payload, &rec.Payload); err != nil {
		return device.Record{}, fmt.Errorf("%w:%w", ErrDecodeFailed, err)
	}
	return rec, nil
}

func (r SnapshotRow) Snapshot() (device.Snapshot, error) {
	s := device.Snapshot{
		ID:         r.ID,
		DeviceID:   r.DeviceID,
		Type:       device.Type(r.DeviceType),
		IsOnline:   r.IsOnline,
		RecordedAt: r.RecordedAt.UTC(),
	}
	if err := json.Unmarshal(r.Payload, &s.Payload); err != nil {
		return device.Snapshot{}, fmt.Errorf("%w:%w", ErrDecodeFailed, err)
	}
	return s, nil
}
