package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/pkg/ctxutil"
)

// Record validates input, numbers the check-in as history length + 1,
// generates its reflection and appends it to the device's history.
// Invalid input creates no entry and triggers no generation.
//
// Numbering is not serialized: two concurrent check-ins from one device may
// share a number. Entries themselves are never lost.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.HistoryEntry, error) {
	deviceID, ok := ctxutil.DeviceIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.devices.Exists(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("check device: %w", err)
	}
	if !exists {
		return nil, domain.ErrUnauthorized
	}

	count, err := s.history.Count(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}
	seq := count + 1

	res, err := s.reflector.Generate(ctx, input.toCheckIn(seq))
	if err != nil {
		return nil, err
	}

	entry, err := s.history.Create(ctx, &domain.HistoryEntry{
		DeviceID:       deviceID,
		CheckInNumber:  seq,
		EmotionalState: input.EmotionalState,
		CravingLevel:   input.CravingLevel,
		FeelingsText:   trimOrNil(input.FeelingsText),
		Reflection:     res.Reflection,
		Title:          res.Title,
		Source:         res.Source,
		Origin:         res.Origin,
	})
	if err != nil {
		return nil, fmt.Errorf("create history entry: %w", err)
	}

	s.log.InfoContext(ctx, "check-in recorded",
		slog.String("device_id", deviceID.String()),
		slog.Int("check_in", seq),
		slog.String("origin", res.Origin.String()),
	)
	return entry, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
