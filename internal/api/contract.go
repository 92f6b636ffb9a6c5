package api

import (
	"time"

	"device-telemetry/internal/device"
	"device-telemetry/internal/engine"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MsgNoActuators = "No actuator devices found"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StoreDeviceDataResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Updated   bool      `json:"updated"`
	Timestamp time.Time `json:"timestamp"`
}

type GetDeviceResponse struct {
	Status string        `json:"status"`
	Device device.Record `json:"device"`
}

type GetDeviceHistoryResponse struct {
	Status   string            `json:"status"`
	DeviceID string            `json:"device_id"`
	History  []device.Snapshot `json:"history"`
}

type UpdateDeviceResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Device  device.Record `json:"device"`
}

type ListActuatorsResponse struct {
	Status    string                  `json:"status"`
	Message   string                  `json:"message,omitempty"`
	Count     int                     `json:"count"`
	Actuators []engine.ActuatorStatus `json:"actuators"`
}

type GetActuatorStatusResponse struct {
	Status   string                `json:"status"`
	Actuator engine.ActuatorStatus `json:"actuator"`
}
