package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// SeedDevice registers a device and returns it.
func SeedDevice(t *testing.T, pool *pgxpool.Pool) domain.Device {
	t.Helper()

	d := domain.Device{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO devices (id, created_at) VALUES ($1, $2)`,
		d.ID, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDevice insert device: %v", err)
	}

	return d
}

// SeedCheckIn inserts a fallback-origin check-in for the device at the given time.
// Returns the filled domain.HistoryEntry.
func SeedCheckIn(t *testing.T, pool *pgxpool.Pool, deviceID uuid.UUID, number int, at time.Time) domain.HistoryEntry {
	t.Helper()

	e := domain.HistoryEntry{
		ID:             uuid.New(),
		DeviceID:       deviceID,
		CheckInNumber:  number,
		EmotionalState: 2,
		CravingLevel:   1,
		Reflection:     "Seeded reflection",
		Title:          "Hope",
		Source:         "Step 2 - Hope",
		Origin:         domain.OriginFallback,
		CreatedAt:      at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO checkins (id, device_id, check_in_number, emotional_state, craving_level,
		   reflection, title, source, origin, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.DeviceID, e.CheckInNumber, e.EmotionalState, e.CravingLevel,
		e.Reflection, e.Title, e.Source, e.Origin.String(), e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCheckIn insert checkin: %v", err)
	}

	return e
}
