package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
)

// ErrRideNotFound is returned when a ride does not exist
var ErrRideNotFound = errors.New("ride not found")

// ErrStatusConflict is returned when a conditional status transition found
// the ride in a different status
var ErrStatusConflict = errors.New("ride status changed concurrently")

// RideRepo reads ride state and performs the driver-arrived transition.
// The ride table is owned by the rides service; this repository only
// touches the status column, and only conditionally.
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

const rideColumns = `
	ride_id, rider_id, driver_id, status,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	created_at, updated_at
`

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_id = $1`

	if err := r.db.GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// GetActiveRideForDriver returns the driver's active ride, or nil when none
// exists. At most one active ride per driver is expected; when the store
// violates that, the most recently updated ride wins and the violation is
// logged as a data-integrity concern.
func (r *RideRepo) GetActiveRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	statuses := make([]string, len(models.ActiveRideStatuses))
	for i, s := range models.ActiveRideStatuses {
		statuses[i] = string(s)
	}

	query, args, err := sqlx.In(`
		SELECT `+rideColumns+`
		FROM rides
		WHERE driver_id = ? AND status IN (?)
		ORDER BY updated_at DESC
	`, driverID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build active ride query: %w", err)
	}

	rides := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &rides, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}

	if len(rides) == 0 {
		return nil, nil
	}
	if len(rides) > 1 {
		logger.Warn("Driver has multiple active rides, using most recent",
			logger.String("driver_id", driverID.String()),
			logger.Int("count", len(rides)))
	}
	return rides[0], nil
}

// UpdateStatus transitions a ride conditionally on its current status
func (r *RideRepo) UpdateStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error {
	query := `
		UPDATE rides
		SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, rideID, from)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}
