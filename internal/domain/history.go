package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one persisted check-in with the reflection it produced.
// Entries are append-only.
type HistoryEntry struct {
	ID             uuid.UUID
	DeviceID       uuid.UUID
	CheckInNumber  int
	EmotionalState int
	CravingLevel   int
	FeelingsText   *string
	Reflection     string
	Title          string
	Source         string
	Origin         ReflectionOrigin
	CreatedAt      time.Time
}

// CheckInStats summarizes a device's check-in history.
type CheckInStats struct {
	TotalCheckIns int
	CurrentStreak int
	LastCheckInAt *time.Time
}

// Device is an anonymous client installation that owns a history.
type Device struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
