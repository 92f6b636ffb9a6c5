package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"device-telemetry/internal/device"
	"device-telemetry/internal/engine"
	"device-telemetry/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const DefaultHistoryLimit = 100

type deviceService interface {
	ApplyUpdate(ctx context.Context, deviceID string, upd device.Update) (device.Record, bool, error)
	ApplyPartialActuatorUpdate(ctx context.Context, deviceID string, payload device.Payload) (device.Record, error)
	GetCurrent(ctx context.Context, deviceID string) (device.Record, bool, error)
	GetHistory(ctx context.Context, deviceID string, limit int) ([]device.Snapshot, error)
	ListActuators(ctx context.Context) ([]engine.ActuatorStatus, error)
	ActuatorStatus(ctx context.Context, deviceID string) (engine.ActuatorStatus, error)
}

type API struct {
	Service deviceService
}

type Config struct {
	Service deviceService
}

func New(cfg Config) *API {
	return &API{Service: cfg.Service}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Post("/device-data", a.StoreDeviceData)
	r.Get("/device-data/{device_id}", a.GetDevice)
	r.Put("/device-data/{device_id}", a.UpdateDevice)
	r.Get("/device-data/{device_id}/history", a.GetDeviceHistory)
	r.Get("/actuators", a.ListActuators)
	r.Get("/actuators/{device_id}/status", a.GetActuatorStatus)
	return r
}

func (a *API) StoreDeviceData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deviceID, upd, err := validation.DecodeUpdate(body, "")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	record, committed, err := a.Service.ApplyUpdate(r.Context(), deviceID, upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StoreDeviceDataResponse{
		Status:    StatusSuccess,
		Message:   "Data received successfully",
		Updated:   committed,
		Timestamp: record.UpdatedAt,
	})
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	record, ok, err := a.Service.GetCurrent(r.Context(), deviceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Device not found")
		return
	}
	writeJSON(w, http.StatusOK, GetDeviceResponse{Status: StatusSuccess, Device: record})
}

func (a *API) GetDeviceHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	limit := DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	_, ok, err := a.Service.GetCurrent(r.Context(), deviceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Device not found")
		return
	}

	history, err := a.Service.GetHistory(r.Context(), deviceID, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GetDeviceHistoryResponse{
		Status:   StatusSuccess,
		DeviceID: deviceID,
		History:  history,
	})
}

func (a *API) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payload, err := validation.DecodeActuatorUpdate(body, deviceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	record, err := a.Service.ApplyPartialActuatorUpdate(r.Context(), deviceID, payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UpdateDeviceResponse{
		Status:  StatusSuccess,
		Message: "Device state updated successfully",
		Device:  record,
	})
}

func (a *API) ListActuators(w http.ResponseWriter, r *http.Request) {
	actuators, err := a.Service.ListActuators(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp := ListActuatorsResponse{Status: StatusSuccess, Count: len(actuators), Actuators: actuators}
	if len(actuators) == 0 {
		resp.Message = MsgNoActuators
		resp.Actuators = []engine.ActuatorStatus{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetActuatorStatus(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	status, err := a.Service.ActuatorStatus(r.Context(), deviceID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GetActuatorStatusResponse{Status: StatusSuccess, Actuator: status})
}

// writeServiceError maps engine errors onto status codes. A history commit
// failure is reported as a server error even though current state was saved.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, device.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, device.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, device.ErrHistoryCommit):
		slog.ErrorContext(r.Context(), "Device state saved without history", "error", err)
		writeError(w, http.StatusInternalServerError, "state saved, history commit failed")
	default:
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Status: StatusError, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
