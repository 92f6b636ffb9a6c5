package mqtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"device-telemetry/internal/device"
	"device-telemetry/internal/validation"
)

var ErrInvalidTopic = fmt.Errorf("%w: topic does not name a device", device.ErrValidation)

type deviceService interface {
	ApplyUpdate(ctx context.Context, deviceID string, upd device.Update) (device.Record, bool, error)
	ApplyPartialActuatorUpdate(ctx context.Context, deviceID string, payload device.Payload) (device.Record, error)
}

type Handler struct {
	engine deviceService
}

func NewHandler(engine deviceService) *Handler {
	return &Handler{engine: engine}
}

// HandleState applies a full device message. The device id comes from the
// topic; a device_id in the body must agree with it.
func (h *Handler) HandleState(ctx context.Context, topic string, payload []byte) error {
	const fn = "MQTT:HandleState"
	topicID, err := DeviceIDFromTopic(topic)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	deviceID, upd, err := validation.DecodeUpdate(payload, topicID)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	_, committed, err := h.engine.ApplyUpdate(ctx, deviceID, upd)
	if err != nil && !errors.Is(err, device.ErrHistoryCommit) {
		return fmt.Errorf("%s:%w", fn, err)
	}
	if err != nil {
		slog.WarnContext(ctx, "Device state saved without history", "device_id", deviceID, "error", err)
		return nil
	}
	slog.DebugContext(ctx, "Applied device state", "device_id", deviceID, "committed", committed)
	return nil
}

// HandleSet merges a partial actuator update.
func (h *Handler) HandleSet(ctx context.Context, topic string, payload []byte) error {
	const fn = "MQTT:HandleSet"
	deviceID, err := DeviceIDFromTopic(topic)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	partial, err := validation.DecodeActuatorUpdate(payload, deviceID)
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	if _, err := h.engine.ApplyPartialActuatorUpdate(ctx, deviceID, partial); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	slog.DebugContext(ctx, "Applied actuator update", "device_id", deviceID)
	return nil
}

// DeviceIDFromTopic extracts <id> from devices/<id>/<kind>.
func DeviceIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "devices" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return parts[1], nil
}
