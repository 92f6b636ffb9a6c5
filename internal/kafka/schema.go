package kafka

import (
	"encoding/json"
	"fmt"

	"device-telemetry/internal/device"
)

const (
	DeviceUpdatesTopic = "device-updates"
	DeviceHistoryTopic = "device-history"
)

// SnapshotEvent is the flat form of a committed snapshot on the history
// topic. Payload holds the JSON-encoded device payload so sink connectors
// can store it without knowing its keys.
type SnapshotEvent struct {
	ID         int64  `json:"id"`
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
	IsOnline   bool   `json:"is_online"`
	Payload    string `json:"payload"`
	RecordedAt int64  `json:"recorded_at"`
}

type StructuredConnectRecord struct {
	Schema  Schema        `json:"schema"`
	Payload SnapshotEvent `json:"payload"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "DeviceSnapshot",
	Optional: false,
	Fields: []Field{
		{Field: "id", Type: "int64"},
		{Field: "device_id", Type: "string"},
		{Field: "device_type", Type: "string"},
		{Field: "is_online", Type: "boolean"},
		{Field: "payload", Type: "string"},
		{Field: "recorded_at", Type: "int64"},
	},
}

// NewSnapshotRecord wraps s for a Kafka Connect JSON converter with schemas
// enabled. RecordedAt is carried as unix milliseconds.
func NewSnapshotRecord(s device.Snapshot) (StructuredConnectRecord, error) {
	payload, err := json.Marshal(s.Payload)
	if err != nil {
		return StructuredConnectRecord{}, fmt.Errorf("marshal payload: %w", err)
	}
	return StructuredConnectRecord{
		Schema: StructuredSchema,
		Payload: SnapshotEvent{
			ID:         s.ID,
			DeviceID:   s.DeviceID,
			DeviceType: string(s.Type),
			IsOnline:   s.IsOnline,
			Payload:    string(payload),
			RecordedAt: s.RecordedAt.UnixMilli(),
		},
	}, nil
}
