package checkin

import (
	"context"
	"fmt"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/pkg/ctxutil"
)

// List returns the device's history, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.HistoryEntry, error) {
	deviceID, ok := ctxutil.DeviceIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	entries, err := s.history.List(ctx, deviceID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
