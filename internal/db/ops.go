package db

import (
	"context"
	"encoding/json"
	"fmt"

	"device-telemetry/internal/device"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrConnectFailed = fmt.Errorf("connect failed: %w", device.ErrStorageUnavailable)
	ErrMigrateFailed = fmt.Errorf("migration failed: %w", device.ErrStorageUnavailable)
	ErrInsertFailed  = fmt.Errorf("insert operation failed: %w", device.ErrStorageUnavailable)
	ErrSelectFailed  = fmt.Errorf("select operation failed: %w", device.ErrStorageUnavailable)
	ErrDecodeFailed  = fmt.Errorf("decode failed: %w", device.ErrStorageUnavailable)
)

func (db *DB) UpsertDevice(ctx context.Context, r device.Record) error {
	const fn = "DB:UpsertDevice"
	payload, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	_, err = db.pool.Exec(ctx, `
		INSERT INTO devices (
			device_id,
			name,
			device_type,
			is_online,
			payload,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (device_id) DO UPDATE SET
			name = EXCLUDED.name,
			device_type = EXCLUDED.device_type,
			is_online = EXCLUDED.is_online,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, r.DeviceID, r.Name, string(r.Type), r.IsOnline, string(payload), r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) LoadDevice(ctx context.Context, deviceID string) (device.Record, bool, error) {
	const fn = "DB:LoadDevice"
	var row DeviceRow
	err := pgxscan.Get(ctx, db.pool, &row, `
		SELECT
			device_id,
			name,
			device_type,
			is_online,
			payload,
			created_at,
			updated_at
		FROM devices
		WHERE device_id = $1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return device.Record{}, false, nil
		}
		return device.Record{}, false, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	rec, err := row.Record()
	if err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	return rec, true, nil
}

func (db *DB) ListDevices(ctx context.Context) ([]device.Record, error) {
	const fn = "DB:ListDevices"
	var rows []DeviceRow
	err := pgxscan.Select(ctx, db.pool, &rows, `
		SELECT
			device_id,
			name,
			device_type,
			is_online,
			payload,
			created_at,
			updated_at
		FROM devices
		ORDER BY device_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	records := make([]device.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.Record()
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CreatePartition registers the device's snapshot log. Concurrent callers for
// the same device leave exactly one registry row.
func (db *DB) CreatePartition(ctx context.Context, deviceID string) error {
	const fn = "DB:CreatePartition"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO device_partitions (device_id)
		VALUES ($1)
		ON CONFLICT (device_id) DO NOTHING
	`, deviceID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) CountPartitions(ctx context.Context, deviceID string) (int, error) {
	const fn = "DB:CountPartitions"
	var n int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM device_partitions WHERE device_id = $1`, deviceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return n, nil
}

func (db *DB) InsertSnapshot(ctx context.Context, deviceID string, s device.Snapshot) (int64, error) {
	const fn = "DB:InsertSnapshot"
	payload, err := json.Marshal(s.Payload)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	var id int64
	err = db.pool.QueryRow(ctx, `
		INSERT INTO device_snapshots (
			device_id,
			payload,
			device_type,
			is_online,
			recorded_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, deviceID, string(payload), string(s.Type), s.IsOnline, s.RecordedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) LatestSnapshot(ctx context.Context, deviceID string) (device.Snapshot, bool, error) {
	snaps, err := db.LoadSnapshots(ctx, deviceID, 1)
	if err != nil {
		return device.Snapshot{}, false, err
	}
	if len(snaps) == 0 {
		return device.Snapshot{}, false, nil
	}
	return snaps[0], true, nil
}

func (db *DB) LoadSnapshots(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error) {
	const fn = "DB:LoadSnapshots"
	var rows []SnapshotRow
	err := pgxscan.Select(ctx, db.pool, &rows, `
		SELECT
			id,
			device_id,
			payload,
			device_type,
			is_online,
			recorded_at
		FROM device_snapshots
		WHERE device_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2
	`, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	snaps := make([]device.Snapshot, 0, len(rows))
	for _, row := range rows {
		s, err := row.Snapshot()
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
		snaps = append(snaps, s)
	}
	return snaps, nil
}
