// Package device holds the records the telemetry service keeps for each
// device: its current state and the snapshots appended to its history
// partition.
package device

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound             = errors.New("device not found")
	ErrValidation           = errors.New("validation failed")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrConcurrencyViolation = errors.New("concurrency violation")
	// ErrHistoryCommit marks a partial success: current state was written but
	// the history snapshot was not.
	ErrHistoryCommit = errors.New("history commit failed")

	ErrTypeConflict = fmt.Errorf("%w: device type cannot change", ErrValidation)
	ErrNotActuator  = fmt.Errorf("%w: device is not an actuator", ErrValidation)
)

type Type string

const (
	Sensor   Type = "sensor"
	Actuator Type = "actuator"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Sensor, Actuator:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: unknown device type %q", ErrValidation, s)
	}
}

// Payload maps reading or setting names to scalar values.
type Payload map[string]Value

func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new payload where every key of update overwrites p and
// every other key of p is retained.
func (p Payload) Merge(update Payload) Payload {
	out := make(Payload, len(p)+len(update))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

func (p Payload) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: payload must be a mapping", ErrValidation)
	}
	for k, v := range p {
		if k == "" {
			return fmt.Errorf("%w: payload key must not be empty", ErrValidation)
		}
		if !v.IsValid() {
			return fmt.Errorf("%w: payload key %q has no scalar value", ErrValidation, k)
		}
	}
	return nil
}

type Record struct {
	DeviceID  string    `json:"device_id"`
	Name      *string   `json:"name"`
	Type      Type      `json:"device_type"`
	Payload   Payload   `json:"payload"`
	IsOnline  bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r Record) Clone() Record {
	out := r
	out.Payload = r.Payload.Clone()
	if r.Name != nil {
		name := *r.Name
		out.Name = &name
	}
	return out
}

// Snapshot captures a record at a point in time. Type and IsOnline are copied
// because either may differ between snapshots.
type Snapshot struct {
	ID         int64     `json:"id"`
	DeviceID   string    `json:"device_id"`
	Payload    Payload   `json:"payload"`
	Type       Type      `json:"device_type"`
	IsOnline   bool      `json:"is_online"`
	RecordedAt time.Time `json:"recorded_at"`
}

func SnapshotOf(r Record, at time.Time) Snapshot {
	return Snapshot{
		DeviceID:   r.DeviceID,
		Payload:    r.Payload.Clone(),
		Type:       r.Type,
		IsOnline:   r.IsOnline,
		RecordedAt: at,
	}
}

// Update carries the fields of one inbound device message. Nil fields were
// not supplied.
type Update struct {
	Payload  Payload
	Name     *string
	Type     *Type
	IsOnline *bool
}
