package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeviceIDFromCtx(t *testing.T) {
	t.Parallel()

	device := uuid.New()

	tests := []struct {
		name   string
		ctx    context.Context
		want   uuid.UUID
		wantOK bool
	}{
		{"registered device", WithDeviceID(context.Background(), device), device, true},
		{"anonymous generate call", context.Background(), uuid.Nil, false},
		{"nil device id", WithDeviceID(context.Background(), uuid.Nil), uuid.Nil, false},
		{"raw token string", context.WithValue(context.Background(), deviceIDKey, device.String()), uuid.Nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DeviceIDFromCtx(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"set", WithRequestID(context.Background(), "req-123"), "req-123"},
		{"missing", context.Background(), ""},
		{"wrong type", context.WithValue(context.Background(), requestIDKey, 12345), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RequestIDFromCtx(tt.ctx))
		})
	}
}

func TestLogAttrs(t *testing.T) {
	t.Parallel()

	device := uuid.New()
	both := WithDeviceID(WithRequestID(context.Background(), "req-7"), device)

	tests := []struct {
		name string
		ctx  context.Context
		want []string
	}{
		{"none", context.Background(), nil},
		{"generate call", WithRequestID(context.Background(), "req-7"), []string{"request_id=req-7"}},
		{"check-in call", both, []string{"request_id=req-7", "device_id=" + device.String()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, a := range LogAttrs(tt.ctx) {
				got = append(got, a.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
