package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saputra/antar/internal/pkg/models"
)

// GeofenceRepo persists geofence events. A unique index on
// (ride_id, event_type) backs the at-most-once-per-ride invariant.
type GeofenceRepo struct {
	db *sqlx.DB
}

// NewGeofenceRepository creates a new geofence event repository
func NewGeofenceRepository(db *sqlx.DB) *GeofenceRepo {
	return &GeofenceRepo{db: db}
}

// RecordedEventTypes returns the set of event types already recorded for a ride
func (r *GeofenceRepo) RecordedEventTypes(ctx context.Context, rideID uuid.UUID) (map[models.GeofenceEventType]bool, error) {
	var types []models.GeofenceEventType
	query := `SELECT event_type FROM geofence_events WHERE ride_id = $1`

	if err := r.db.SelectContext(ctx, &types, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to get recorded geofence events: %w", err)
	}

	recorded := make(map[models.GeofenceEventType]bool, len(types))
	for _, t := range types {
		recorded[t] = true
	}
	return recorded, nil
}

// CreateEvent appends a geofence event. Returns created=false when a
// concurrent report already recorded the same event type for the ride.
func (r *GeofenceRepo) CreateEvent(ctx context.Context, event *models.GeofenceEvent) (bool, error) {
	query := `
		INSERT INTO geofence_events (
			ride_id, event_type, latitude, longitude, radius_meters, triggered_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ride_id, event_type) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		event.RideID,
		event.EventType,
		event.Latitude,
		event.Longitude,
		event.RadiusMeters,
		event.TriggeredAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create geofence event: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return true, nil
	}
	return inserted > 0, nil
}
