// Package history implements the append-only check-in history repository
// using PostgreSQL.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

const table = "checkins"

var columns = []string{
	"id", "device_id", "check_in_number", "emotional_state", "craving_level",
	"feelings_text", "reflection", "title", "source", "origin", "created_at",
}

// Repo provides check-in history persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new history repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts entry and returns the stored row with ID and CreatedAt set.
func (r *Repo) Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("device_id", "check_in_number", "emotional_state", "craving_level",
			"feelings_text", "reflection", "title", "source", "origin").
		Values(entry.DeviceID, entry.CheckInNumber, entry.EmotionalState, entry.CravingLevel,
			entry.FeelingsText, entry.Reflection, entry.Title, entry.Source, entry.Origin.String()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	out, err := scanEntry(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "history create")
	}
	return out, nil
}

// Count returns how many entries the device has.
func (r *Repo) Count(ctx context.Context, deviceID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"device_id": deviceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "history count")
	}
	return n, nil
}

// List returns a page of the device's entries, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*domain.HistoryEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC", "check_in_number DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "history list")
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "history list scan")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "history list")
	}
	return entries, nil
}

// Timestamps returns creation times of all the device's entries, newest first.
func (r *Repo) Timestamps(ctx context.Context, deviceID uuid.UUID) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("created_at").
		From(table).
		Where(squirrel.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build timestamps: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "history timestamps")
	}
	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, postgres.MapError(err, "history timestamps")
	}
	return times, nil
}

func scanEntry(row pgx.Row) (*domain.HistoryEntry, error) {
	var (
		e      domain.HistoryEntry
		origin string
	)
	err := row.Scan(
		&e.ID, &e.DeviceID, &e.CheckInNumber, &e.EmotionalState, &e.CravingLevel,
		&e.FeelingsText, &e.Reflection, &e.Title, &e.Source, &origin, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Origin = domain.ReflectionOrigin(origin)
	return &e, nil
}
