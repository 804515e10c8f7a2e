//go:generate mockgen -source=tracking.go -destination=mocks/mock_tracking.go -package=mocks
package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/models"
)

// TrackingUC is the ingestion and query surface of the tracking service
type TrackingUC interface {
	// ReportLocation processes one driver location report. Rate-limited
	// reports return a result with Updated=false and no error.
	ReportLocation(ctx context.Context, driverID uuid.UUID, pos *models.DriverPosition) (*models.TrackingResult, error)

	// GetRideDriverLocation returns the latest known driver location for a ride
	GetRideDriverLocation(ctx context.Context, rideID uuid.UUID) (*models.DriverLocationSnapshot, error)

	// GetDriverHistory returns history records for a driver within a window
	GetDriverHistory(ctx context.Context, driverID uuid.UUID, start, end time.Time) ([]*models.LocationHistoryRecord, error)

	// GetNearbyDrivers returns drivers within radiusKm of a point
	GetNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]*models.NearbyDriver, error)

	// GetRideETA estimates distance and duration from the driver's last
	// known position to the ride's current target point
	GetRideETA(ctx context.Context, rideID uuid.UUID) (*models.RouteEstimate, error)
}

// LocationRepo persists driver location snapshots and history
type LocationRepo interface {
	UpsertSnapshot(ctx context.Context, snapshot *models.DriverLocationSnapshot) error
	GetSnapshot(ctx context.Context, driverID uuid.UUID) (*models.DriverLocationSnapshot, error)
	AppendHistory(ctx context.Context, record *models.LocationHistoryRecord) error
	GetHistory(ctx context.Context, driverID uuid.UUID, start, end time.Time) ([]*models.LocationHistoryRecord, error)
	PruneHistory(ctx context.Context, before time.Time) (int64, error)
	NearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]*models.NearbyDriver, error)
}

// GeofenceRepo persists geofence events with the per-ride uniqueness
// guarantee per event type
type GeofenceRepo interface {
	RecordedEventTypes(ctx context.Context, rideID uuid.UUID) (map[models.GeofenceEventType]bool, error)

	// CreateEvent appends the event. Returns created=false without error
	// when an event of the same type already exists for the ride.
	CreateEvent(ctx context.Context, event *models.GeofenceEvent) (created bool, err error)
}

// RideRepo reads ride state and performs the driver-arrived transition
type RideRepo interface {
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// GetActiveRideForDriver returns the driver's active ride or nil when
	// none exists. When the store holds more than one active ride it
	// returns the most recently updated one.
	GetActiveRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)

	// UpdateStatus transitions a ride from one status to another; the
	// write is conditional on the current status
	UpdateStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error
}

// DriverRepo reads driver profile state
type DriverRepo interface {
	DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error)
}

// TrackingGW publishes tracking events to sibling services
type TrackingGW interface {
	PublishLocationUpdate(ctx context.Context, event *models.LocationUpdateEvent) error
	PublishGeofenceEvent(ctx context.Context, event *models.GeofenceEvent) error
	PublishRideArrived(ctx context.Context, ride *models.Ride) error
}

// RouteEstimator resolves road distance and duration between two points.
// Never fails: falls back to scaled straight-line arithmetic.
type RouteEstimator interface {
	Estimate(ctx context.Context, fromLat, fromLon, toLat, toLon float64) *models.RouteEstimate
}
