package checkin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

type historyRepo interface {
	Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error)
	Count(ctx context.Context, deviceID uuid.UUID) (int, error)
	List(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*domain.HistoryEntry, error)
	// Timestamps returns creation times of all entries, newest first.
	Timestamps(ctx context.Context, deviceID uuid.UUID) ([]time.Time, error)
}

type deviceRepo interface {
	Create(ctx context.Context) (*domain.Device, error)
	Exists(ctx context.Context, deviceID uuid.UUID) (bool, error)
}

type reflector interface {
	Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error)
}

type tokenIssuer interface {
	GenerateDeviceToken(deviceID uuid.UUID) (string, time.Time, error)
}

// Service keeps a per-device history of check-ins and their reflections.
type Service struct {
	history   historyRepo
	devices   deviceRepo
	reflector reflector
	tokens    tokenIssuer
	now       func() time.Time
	loc       *time.Location
	log       *slog.Logger
}

// NewService creates a new check-in service. loc is the zone used for
// streaks when a request carries no timezone.
func NewService(
	log *slog.Logger,
	history historyRepo,
	devices deviceRepo,
	reflector reflector,
	tokens tokenIssuer,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		history:   history,
		devices:   devices,
		reflector: reflector,
		tokens:    tokens,
		now:       time.Now,
		loc:       loc,
		log:       log.With("service", "checkin"),
	}
}
