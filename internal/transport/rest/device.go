package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/service/checkin"
)

type deviceRegistrar interface {
	RegisterDevice(ctx context.Context) (*checkin.Registration, error)
}

// DeviceHandler serves POST /devices.
type DeviceHandler struct {
	svc deviceRegistrar
	log *slog.Logger
}

// NewDeviceHandler creates a DeviceHandler.
func NewDeviceHandler(svc deviceRegistrar, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{svc: svc, log: logger.With("handler", "device")}
}

type registrationResponse struct {
	DeviceID  string     `json:"deviceId"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Register handles POST /devices.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.RegisterDevice(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := registrationResponse{DeviceID: reg.DeviceID.String(), Token: reg.Token}
	if !reg.ExpiresAt.IsZero() {
		resp.ExpiresAt = &reg.ExpiresAt
	}
	writeJSON(w, http.StatusCreated, resp)
}
