package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DriverRepo manages driver profile lookups.
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// DriverExists reports whether a driver profile is registered.
func (r *DriverRepo) DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM driver_profiles WHERE driver_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, driverID); err != nil {
		return false, fmt.Errorf("failed to check driver profile: %w", err)
	}
	return exists, nil
}
