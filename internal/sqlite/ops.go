package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"device-telemetry/internal/device"
)

var (
	ErrOpenFailed   = fmt.Errorf("open failed: %w", device.ErrStorageUnavailable)
	ErrInsertFailed = fmt.Errorf("insert operation failed: %w", device.ErrStorageUnavailable)
	ErrSelectFailed = fmt.Errorf("select operation failed: %w", device.ErrStorageUnavailable)
	ErrDecodeFailed = fmt.Errorf("decode failed: %w", device.ErrStorageUnavailable)
)

type scanner interface {
	Scan(dest ...any) error
}

func (db *DB) UpsertDevice(ctx context.Context, r device.Record) error {
	const fn = "SQLite:UpsertDevice"
	payload, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO devices (
			device_id,
			name,
			device_type,
			is_online,
			payload,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (device_id) DO UPDATE SET
			name = excluded.name,
			device_type = excluded.device_type,
			is_online = excluded.is_online,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, r.DeviceID, r.Name, string(r.Type), r.IsOnline, string(payload), r.CreatedAt.UnixNano(), r.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) LoadDevice(ctx context.Context, deviceID string) (device.Record, bool, error) {
	const fn = "SQLite:LoadDevice"
	row := db.conn.QueryRowContext(ctx, `
		SELECT device_id, name, device_type, is_online, payload, created_at, updated_at
		FROM devices
		WHERE device_id = ?
	`, deviceID)
	r, err := scanDevice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return device.Record{}, false, nil
	}
	if err != nil {
		return device.Record{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	return r, true, nil
}

func (db *DB) ListDevices(ctx context.Context) ([]device.Record, error) {
	const fn = "SQLite:ListDevices"
	rows, err := db.conn.QueryContext(ctx, `
		SELECT device_id, name, device_type, is_online, payload, created_at, updated_at
		FROM devices
		ORDER BY device_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	defer rows.Close()

	records := []device.Record{}
	for rows.Next() {
		r, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return records, nil
}

func scanDevice(s scanner) (device.Record, error) {
	var (
		r         device.Record
		name      sql.NullString
		typ       string
		payload   string
		createdAt int64
		updatedAt int64
	)
	if err := s.Scan(&r.DeviceID, &name, &typ, &r.IsOnline, &payload, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return device.Record{}, err
		}
		return device.Record{}, fmt.Errorf("%w:%w", ErrSelectFailed, err)
	}
	if name.Valid {
		r.Name = &name.String
	}
	r.Type = device.Type(typ)
	if err := json.Unmarshal([]byte(payload), &r.Payload); err != nil {
		return device.Record{}, fmt.Errorf("%w:%w", ErrDecodeFailed, err)
	}
	r.CreatedAt = time.Unix(0, createdAt).UTC()
	r.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return r, nil
}

func (db *DB) CreatePartition(ctx context.Context, deviceID string) error {
	const fn = "SQLite:CreatePartition"
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO device_partitions (device_id, created_at)
		VALUES (?, ?)
		ON CONFLICT (device_id) DO NOTHING
	`, deviceID, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// CountPartitions reports how many partitions exist for deviceID (0 or 1).
func (db *DB) CountPartitions(ctx context.Context, deviceID string) (int, error) {
	const fn = "SQLite:CountPartitions"
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM device_partitions WHERE device_id = ?`, deviceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return n, nil
}

func (db *DB) InsertSnapshot(ctx context.Context, deviceID string, s device.Snapshot) (int64, error) {
	const fn = "SQLite:InsertSnapshot"
	payload, err := json.Marshal(s.Payload)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO device_snapshots (
			device_id,
			payload,
			device_type,
			is_online,
			recorded_at
		) VALUES (?, ?, ?, ?, ?)
	`, deviceID, string(payload), string(s.Type), s.IsOnline, s.RecordedAt.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	id, err := res.LastInsertId()
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
	const fn = "SQLite:LoadSnapshots"
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, device_id, payload, device_type, is_online, recorded_at
		FROM device_snapshots
		WHERE device_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	defer rows.Close()

	snaps := make([]device.Snapshot, 0, min(limit, 128))
	for rows.Next() {
		var (
			s          device.Snapshot
			payload    string
			typ        string
			recordedAt int64
		)
		if err := rows.Scan(&s.ID, &s.DeviceID, &payload, &typ, &s.IsOnline, &recordedAt); err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
		}
		if err := json.Unmarshal([]byte(payload), &s.Payload); err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrDecodeFailed, err)
		}
		s.Type = device.Type(typ)
		s.RecordedAt = time.Unix(0, recordedAt).UTC()
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return snaps, nil
}
