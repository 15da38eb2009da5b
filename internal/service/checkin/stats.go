package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/pkg/ctxutil"
)

// Stats summarizes the device's history. Days are bucketed in the input
// timezone, or the service default when empty.
func (s *Service) Stats(ctx context.Context, input StatsInput) (*domain.CheckInStats, error) {
	deviceID, ok := ctxutil.DeviceIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	loc := s.loc
	if input.Timezone != "" {
		loc, _ = time.LoadLocation(input.Timezone)
	}

	times, err := s.history.Timestamps(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("load timestamps: %w", err)
	}

	stats := &domain.CheckInStats{
		TotalCheckIns: len(times),
		CurrentStreak: Streak(times, s.now(), loc),
	}
	if len(times) > 0 {
		last := latest(times)
		stats.LastCheckInAt = &last
	}
	return stats, nil
}

// Streak counts consecutive local calendar days with at least one check-in,
// ending today or yesterday. A gap of a full day resets it to zero.
func Streak(times []time.Time, now time.Time, loc *time.Location) int {
	days := make(map[civilDay]bool, len(times))
	for _, t := range times {
		days[dayOf(t.In(loc))] = true
	}

	// Noon keeps AddDate on the intended calendar day across DST shifts.
	y, m, d := now.In(loc).Date()
	cursor := time.Date(y, m, d, 12, 0, 0, 0, loc)
	if !days[dayOf(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[dayOf(cursor)] {
			return 0
		}
	}

	streak := 0
	for days[dayOf(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

type civilDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) civilDay {
	y, m, d := t.Date()
	return civilDay{y, m, d}
}

func latest(times []time.Time) time.Time {
	newest := times[0]
	for _, t := range times[1:] {
		if t.After(newest) {
			newest = t
		}
	}
	return newest
}
