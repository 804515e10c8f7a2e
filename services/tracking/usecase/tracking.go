package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/internal/utils"
	"github.com/saputra/antar/services/tracking"
	"github.com/saputra/antar/services/tracking/repository"
)

// ErrInvalidCoordinates is returned when a report carries an out-of-range
// latitude or longitude
var ErrInvalidCoordinates = errors.New("latitude or longitude out of range")

// ErrNoGeoTarget is returned when a ride's status gives the driver nothing
// to head to
var ErrNoGeoTarget = errors.New("ride has no active geo target")

// TrackingUC implements the tracking.TrackingUC interface. It coordinates
// the full lifecycle of a location report: throttling, persistence, geofence
// evaluation, the driver-arrived transition and event publication.
type TrackingUC struct {
	cfg          models.TrackingConfig
	locationRepo tracking.LocationRepo
	rideRepo     tracking.RideRepo
	driverRepo   tracking.DriverRepo
	gateway      tracking.TrackingGW
	estimator    tracking.RouteEstimator
	geofence     *GeofenceEngine
	limiter      *rateLimiter
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg models.TrackingConfig,
	locationRepo tracking.LocationRepo,
	rideRepo tracking.RideRepo,
	driverRepo tracking.DriverRepo,
	geofenceRepo tracking.GeofenceRepo,
	gateway tracking.TrackingGW,
	estimator tracking.RouteEstimator,
) tracking.TrackingUC {
	return &TrackingUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		rideRepo:     rideRepo,
		driverRepo:   driverRepo,
		gateway:      gateway,
		estimator:    estimator,
		geofence:     NewGeofenceEngine(geofenceRepo, cfg),
		limiter:      newRateLimiter(time.Duration(cfg.MinUpdateIntervalMS) * time.Millisecond),
	}
}

// ReportLocation processes one driver location report
func (uc *TrackingUC) ReportLocation(ctx context.Context, driverID uuid.UUID, pos *models.DriverPosition) (*models.TrackingResult, error) {
	if !utils.ValidCoordinates(pos.Latitude, pos.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	now := time.Now()
	if !uc.limiter.Allow(driverID, now) {
		return &models.TrackingResult{Updated: false}, nil
	}

	exists, err := uc.driverRepo.DriverExists(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.Warn("Dropping location report from unknown driver",
			logger.String("driver_id", driverID.String()))
		return &models.TrackingResult{Updated: false}, nil
	}

	snapshot := &models.DriverLocationSnapshot{
		DriverID:  driverID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Accuracy:  pos.Accuracy,
		Speed:     pos.Speed,
		Heading:   pos.Heading,
		Altitude:  pos.Altitude,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	history := &models.LocationHistoryRecord{
		DriverID:   driverID,
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		Accuracy:   pos.Accuracy,
		Speed:      pos.Speed,
		Heading:    pos.Heading,
		Altitude:   pos.Altitude,
		RecordedAt: now,
	}
	if err := uc.locationRepo.AppendHistory(ctx, history); err != nil {
		// The snapshot is already current; history gaps are tolerable
		logger.Error("Failed to append location history",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	result := &models.TrackingResult{Updated: true, Snapshot: snapshot}

	ride, err := uc.rideRepo.GetActiveRideForDriver(ctx, driverID)
	if err != nil {
		logger.Error("Failed to look up active ride, skipping geofence evaluation",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return result, nil
	}
	if ride == nil {
		return result, nil
	}
	result.Ride = ride

	event, err := uc.geofence.Evaluate(ctx, ride, pos.Latitude, pos.Longitude)
	if err != nil {
		logger.Error("Geofence evaluation failed",
			logger.String("ride_id", ride.RideID.String()),
			logger.Err(err))
	}
	if event != nil {
		result.Event = event
		if event.EventType == models.GeofenceArrivedPickup && ride.Status == models.RideStatusAccepted {
			uc.markDriverArrived(ctx, ride)
		}
	}

	uc.publish(ctx, result)
	return result, nil
}

// markDriverArrived transitions the ride to driver_arrived. The write is
// conditional on the accepted status, so a concurrent transition simply
// turns this into a no-op.
func (uc *TrackingUC) markDriverArrived(ctx context.Context, ride *models.Ride) {
	err := uc.rideRepo.UpdateStatus(ctx, ride.RideID, models.RideStatusAccepted, models.RideStatusDriverArrived)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			logger.Warn("Ride left accepted status before arrival transition",
				logger.String("ride_id", ride.RideID.String()))
		} else {
			logger.Error("Failed to mark driver arrived",
				logger.String("ride_id", ride.RideID.String()),
				logger.Err(err))
		}
		return
	}

	ride.Status = models.RideStatusDriverArrived
	if err := uc.gateway.PublishRideArrived(ctx, ride); err != nil {
		logger.Error("Failed to publish ride arrived event",
			logger.String("ride_id", ride.RideID.String()),
			logger.Err(err))
	}
}

func (uc *TrackingUC) publish(ctx context.Context, result *models.TrackingResult) {
	update := &models.LocationUpdateEvent{
		RideID:    result.Ride.RideID.String(),
		DriverID:  result.Snapshot.DriverID.String(),
		Latitude:  result.Snapshot.Latitude,
		Longitude: result.Snapshot.Longitude,
		CreatedAt: result.Snapshot.UpdatedAt,
	}
	if err := uc.gateway.PublishLocationUpdate(ctx, update); err != nil {
		logger.Error("Failed to publish location update",
			logger.String("ride_id", update.RideID),
			logger.Err(err))
	}

	if result.Event != nil {
		if err := uc.gateway.PublishGeofenceEvent(ctx, result.Event); err != nil {
			logger.Error("Failed to publish geofence event",
				logger.String("ride_id", result.Event.RideID.String()),
				logger.String("event_type", string(result.Event.EventType)),
				logger.Err(err))
		}
	}
}

// GetRideDriverLocation returns the latest driver location for a ride
func (uc *TrackingUC) GetRideDriverLocation(ctx context.Context, rideID uuid.UUID) (*models.DriverLocationSnapshot, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	return uc.locationRepo.GetSnapshot(ctx, ride.DriverID)
}

// GetDriverHistory returns history records for a driver within a window
func (uc *TrackingUC) GetDriverHistory(ctx context.Context, driverID uuid.UUID, start, end time.Time) ([]*models.LocationHistoryRecord, error) {
	return uc.locationRepo.GetHistory(ctx, driverID, start, end)
}

// GetRideETA estimates distance and duration from the driver's last known
// position to the ride's current target point
func (uc *TrackingUC) GetRideETA(ctx context.Context, rideID uuid.UUID) (*models.RouteEstimate, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	targetLat, targetLon, _, ok := ride.GeoTarget()
	if !ok {
		return nil, ErrNoGeoTarget
	}

	snapshot, err := uc.locationRepo.GetSnapshot(ctx, ride.DriverID)
	if err != nil {
		return nil, err
	}

	return uc.estimator.Estimate(ctx, snapshot.Latitude, snapshot.Longitude, targetLat, targetLon), nil
}

// GetNearbyDrivers returns drivers within radiusKm of a point. A zero or
// negative radius falls back to the configured default.
func (uc *TrackingUC) GetNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]*models.NearbyDriver, error) {
	if !utils.ValidCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.NearbyRadiusKm
	}
	return uc.locationRepo.NearbyDrivers(ctx, lat, lon, radiusKm)
}
