// Package validation decodes inbound device messages, whatever transport they
// arrive on, into engine updates.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"device-telemetry/internal/device"
)

var (
	ErrMalformedBody   = fmt.Errorf("%w: malformed body", device.ErrValidation)
	ErrMissingDeviceID = fmt.Errorf("%w: device_id is required", device.ErrValidation)
	ErrMissingPayload  = fmt.Errorf("%w: payload is required", device.ErrValidation)
	ErrDeviceMismatch  = fmt.Errorf("%w: device_id does not match target device", device.ErrValidation)
)

// DeviceRequest is the body of a device state message.
type DeviceRequest struct {
	DeviceID   string         `json:"device_id"`
	Payload    device.Payload `json:"payload"`
	Name       *string        `json:"name,omitempty"`
	DeviceType *string        `json:"device_type,omitempty"`
	IsOnline   *bool          `json:"is_online,omitempty"`
}

// ActuatorRequest is the body of a partial actuator update.
type ActuatorRequest struct {
	DeviceID   string         `json:"device_id,omitempty"`
	Payload    device.Payload `json:"payload"`
	DeviceType string         `json:"device_type"`
}

// DecodeUpdate validates a device state message. fallbackID is used when the
// body carries no device_id, e.g. when the id comes from an MQTT topic.
func DecodeUpdate(data []byte, fallbackID string) (string, device.Update, error) {
	const fn = "Validation:DecodeUpdate"
	var req DeviceRequest
	if err := decode(data, &req); err != nil {
		return "", device.Update{}, fmt.Errorf("%s:%w", fn, err)
	}
	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = fallbackID
	} else if fallbackID != "" && deviceID != fallbackID {
		return "", device.Update{}, fmt.Errorf("%s:%w: %s", fn, ErrDeviceMismatch, deviceID)
	}
	if deviceID == "" {
		return "", device.Update{}, fmt.Errorf("%s:%w", fn, ErrMissingDeviceID)
	}
	if req.Payload == nil {
		return "", device.Update{}, fmt.Errorf("%s:%w", fn, ErrMissingPayload)
	}
	if err := req.Payload.Validate(); err != nil {
		return "", device.Update{}, fmt.Errorf("%s:%w", fn, err)
	}

	upd := device.Update{
		Payload:  req.Payload,
		Name:     req.Name,
		IsOnline: req.IsOnline,
	}
	if req.DeviceType != nil {
		t, err := device.ParseType(*req.DeviceType)
		if err != nil {
			return "", device.Update{}, fmt.Errorf("%s:%w", fn, err)
		}
		upd.Type = &t
	}
	return deviceID, upd, nil
}

// DecodeActuatorUpdate validates a partial actuator update addressed to
// deviceID. The body must declare device_type "actuator".
func DecodeActuatorUpdate(data []byte, deviceID string) (device.Payload, error) {
	const fn = "Validation:DecodeActuatorUpdate"
	var req ActuatorRequest
	if err := decode(data, &req); err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	if deviceID == "" {
		return nil, fmt.Errorf("%s:%w", fn, ErrMissingDeviceID)
	}
	if req.DeviceID != "" && req.DeviceID != deviceID {
		return nil, fmt.Errorf("%s:%w: %s", fn, ErrDeviceMismatch, req.DeviceID)
	}
	if device.Type(req.DeviceType) != device.Actuator {
		return nil, fmt.Errorf("%s:%w", fn, device.ErrNotActuator)
	}
	if req.Payload == nil {
		return nil, fmt.Errorf("%s:%w", fn, ErrMissingPayload)
	}
	if err := req.Payload.Validate(); err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return req.Payload, nil
}

func decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrMalformedBody
	}
	if err := json.Unmarshal(data, v); err != nil {
		if errors.Is(err, device.ErrValidation) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}
