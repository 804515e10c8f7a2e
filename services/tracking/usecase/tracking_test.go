package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/services/tracking/mocks"
	"github.com/saputra/antar/services/tracking/repository"
	"github.com/stretchr/testify/assert"
)

type coordinatorMocks struct {
	locationRepo *mocks.MockLocationRepo
	rideRepo     *mocks.MockRideRepo
	driverRepo   *mocks.MockDriverRepo
	geofenceRepo *mocks.MockGeofenceRepo
	gateway      *mocks.MockTrackingGW
	estimator    *mocks.MockRouteEstimator
}

func newCoordinator(ctrl *gomock.Controller, cfg models.TrackingConfig) (*TrackingUC, *coordinatorMocks) {
	m := &coordinatorMocks{
		locationRepo: mocks.NewMockLocationRepo(ctrl),
		rideRepo:     mocks.NewMockRideRepo(ctrl),
		driverRepo:   mocks.NewMockDriverRepo(ctrl),
		geofenceRepo: mocks.NewMockGeofenceRepo(ctrl),
		gateway:      mocks.NewMockTrackingGW(ctrl),
		estimator:    mocks.NewMockRouteEstimator(ctrl),
	}
	uc := NewTrackingUC(cfg, m.locationRepo, m.rideRepo, m.driverRepo, m.geofenceRepo, m.gateway, m.estimator)
	return uc.(*TrackingUC), m
}

func validPosition() *models.DriverPosition {
	return &models.DriverPosition{
		Latitude:  -6.175392,
		Longitude: 106.827153,
	}
}

func TestReportLocation_NoActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(nil, nil)

	result, err := uc.ReportLocation(context.Background(), driverID, validPosition())

	assert.NoError(t, err)
	assert.True(t, result.Updated)
	assert.NotNil(t, result.Snapshot)
	assert.Equal(t, driverID, result.Snapshot.DriverID)
	assert.Nil(t, result.Ride)
	assert.Nil(t, result.Event)
}

func TestReportLocation_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newCoordinator(ctrl, testTrackingCfg)

	_, err := uc.ReportLocation(context.Background(), uuid.New(), &models.DriverPosition{
		Latitude:  91.0,
		Longitude: 106.8,
	})

	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestReportLocation_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(nil, nil)

	first, err := uc.ReportLocation(context.Background(), driverID, validPosition())
	assert.NoError(t, err)
	assert.True(t, first.Updated)

	// The immediate second report is silently dropped: no persistence, no
	// lookups, no error
	second, err := uc.ReportLocation(context.Background(), driverID, validPosition())
	assert.NoError(t, err)
	assert.False(t, second.Updated)
	assert.Nil(t, second.Snapshot)
}

func TestReportLocation_UnknownDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(false, nil)

	result, err := uc.ReportLocation(context.Background(), driverID, validPosition())

	assert.NoError(t, err)
	assert.False(t, result.Updated)
}

func TestReportLocation_SnapshotFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := uc.ReportLocation(context.Background(), driverID, validPosition())

	assert.Error(t, err)
}

func TestReportLocation_HistoryFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(nil, nil)

	result, err := uc.ReportLocation(context.Background(), driverID, validPosition())

	assert.NoError(t, err)
	assert.True(t, result.Updated)
}

func TestReportLocation_RideLookupFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)
	driverID := uuid.New()

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(nil, errors.New("timeout"))

	result, err := uc.ReportLocation(context.Background(), driverID, validPosition())

	assert.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Nil(t, result.Ride)
}

func TestReportLocation_ArrivedPickupTransitionsRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	driverID := ride.DriverID

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(ride, nil)
	m.geofenceRepo.EXPECT().RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	m.geofenceRepo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(true, nil)
	m.rideRepo.EXPECT().
		UpdateStatus(gomock.Any(), ride.RideID, models.RideStatusAccepted, models.RideStatusDriverArrived).
		Return(nil)
	m.gateway.EXPECT().PublishRideArrived(gomock.Any(), ride).Return(nil)
	m.gateway.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.gateway.EXPECT().PublishGeofenceEvent(gomock.Any(), gomock.Any()).Return(nil)

	// Report from the pickup point itself
	result, err := uc.ReportLocation(context.Background(), driverID, &models.DriverPosition{
		Latitude:  ride.PickupLatitude,
		Longitude: ride.PickupLongitude,
	})

	assert.NoError(t, err)
	assert.True(t, result.Updated)
	assert.NotNil(t, result.Event)
	assert.Equal(t, models.GeofenceArrivedPickup, result.Event.EventType)
	assert.Equal(t, models.RideStatusDriverArrived, result.Ride.Status)
}

func TestReportLocation_StatusConflictTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	driverID := ride.DriverID

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(ride, nil)
	m.geofenceRepo.EXPECT().RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	m.geofenceRepo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(true, nil)
	m.rideRepo.EXPECT().
		UpdateStatus(gomock.Any(), ride.RideID, models.RideStatusAccepted, models.RideStatusDriverArrived).
		Return(repository.ErrStatusConflict)
	m.gateway.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.gateway.EXPECT().PublishGeofenceEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ReportLocation(context.Background(), driverID, &models.DriverPosition{
		Latitude:  ride.PickupLatitude,
		Longitude: ride.PickupLongitude,
	})

	// The conflict is swallowed; the ride keeps its stale status locally
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, result.Ride.Status)
}

func TestReportLocation_GeofenceFailureStillAcks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	driverID := ride.DriverID

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(ride, nil)
	m.geofenceRepo.EXPECT().RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(nil, errors.New("query failed"))
	m.gateway.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ReportLocation(context.Background(), driverID, &models.DriverPosition{
		Latitude:  ride.PickupLatitude,
		Longitude: ride.PickupLongitude,
	})

	assert.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Nil(t, result.Event)
}

func TestReportLocation_PublishFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	driverID := ride.DriverID

	m.driverRepo.EXPECT().DriverExists(gomock.Any(), driverID).Return(true, nil)
	m.locationRepo.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	m.locationRepo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.rideRepo.EXPECT().GetActiveRideForDriver(gomock.Any(), driverID).Return(ride, nil)
	m.gateway.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	// Far from both geofence radii, so no event fires
	result, err := uc.ReportLocation(context.Background(), driverID, &models.DriverPosition{
		Latitude:  -6.19,
		Longitude: 106.81,
	})

	assert.NoError(t, err)
	assert.True(t, result.Updated)
}

func TestGetRideDriverLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	snapshot := &models.DriverLocationSnapshot{
		DriverID:  ride.DriverID,
		Latitude:  -6.18,
		Longitude: 106.82,
		UpdatedAt: time.Now(),
	}

	m.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	m.locationRepo.EXPECT().GetSnapshot(gomock.Any(), ride.DriverID).Return(snapshot, nil)

	got, err := uc.GetRideDriverLocation(context.Background(), ride.RideID)

	assert.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestGetRideETA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	snapshot := &models.DriverLocationSnapshot{
		DriverID:  ride.DriverID,
		Latitude:  -6.19,
		Longitude: 106.81,
	}
	estimate := &models.RouteEstimate{
		DistanceMeters:  3200,
		DurationSeconds: 576,
		Source:          "routing_api",
	}

	m.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	m.locationRepo.EXPECT().GetSnapshot(gomock.Any(), ride.DriverID).Return(snapshot, nil)
	m.estimator.EXPECT().
		Estimate(gomock.Any(), snapshot.Latitude, snapshot.Longitude, ride.PickupLatitude, ride.PickupLongitude).
		Return(estimate)

	got, err := uc.GetRideETA(context.Background(), ride.RideID)

	assert.NoError(t, err)
	assert.Equal(t, estimate, got)
}

func TestGetRideETA_NoTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	ride := acceptedRide()
	ride.Status = models.RideStatusCompleted

	m.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	_, err := uc.GetRideETA(context.Background(), ride.RideID)

	assert.ErrorIs(t, err, ErrNoGeoTarget)
}

func TestGetNearbyDrivers_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newCoordinator(ctrl, testTrackingCfg)

	m.locationRepo.EXPECT().
		NearbyDrivers(gomock.Any(), -6.2, 106.8, testTrackingCfg.NearbyRadiusKm).
		Return([]*models.NearbyDriver{}, nil)

	_, err := uc.GetNearbyDrivers(context.Background(), -6.2, 106.8, 0)

	assert.NoError(t, err)
}
