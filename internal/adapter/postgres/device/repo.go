// Package device implements the anonymous device registry using PostgreSQL.
package device

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// Repo provides device persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new device repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create registers a new device with a server-generated ID.
func (r *Repo) Create(ctx context.Context) (*domain.Device, error) {
	query, args, err := postgres.Builder().
		Insert("devices").
		Columns("id").
		Values(uuid.New()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var d domain.Device
	if err := r.q.QueryRow(ctx, query, args...).Scan(&d.ID, &d.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "device create")
	}
	return &d, nil
}

// Exists reports whether the device is registered.
func (r *Repo) Exists(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	sub, args, err := postgres.Builder().
		Select("1").
		From("devices").
		Where(squirrel.Eq{"id": deviceID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists: %w", err)
	}

	var ok bool
	if err := r.q.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "device exists")
	}
	return ok, nil
}
