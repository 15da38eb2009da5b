package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Registration is a newly created device and its bearer token.
type Registration struct {
	DeviceID  uuid.UUID
	Token     string
	ExpiresAt time.Time
}

// RegisterDevice creates an anonymous device and issues its token.
func (s *Service) RegisterDevice(ctx context.Context) (*Registration, error) {
	dev, err := s.devices.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}

	token, exp, err := s.tokens.GenerateDeviceToken(dev.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "device registered", slog.String("device_id", dev.ID.String()))

	return &Registration{DeviceID: dev.ID, Token: token, ExpiresAt: exp}, nil
}
