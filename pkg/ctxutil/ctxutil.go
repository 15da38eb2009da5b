// Package ctxutil carries per-request identifiers through context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	deviceIDKey  ctxKey = "device_id"
	requestIDKey ctxKey = "request_id"
)

// WithDeviceID stores the device ID in the context.
func WithDeviceID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, deviceIDKey, id)
}

// DeviceIDFromCtx extracts the device ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func DeviceIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(deviceIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogAttrs returns the identifiers carried by ctx as slog attributes:
// request_id when set and device_id when authenticated.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := DeviceIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("device_id", id.String()))
	}
	return attrs
}
