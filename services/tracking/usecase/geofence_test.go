package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
)

var testTrackingCfg = models.TrackingConfig{
	MinUpdateIntervalMS:  2000,
	ArrivedRadiusM:       50,
	ApproachingRadiusM:   200,
	HistoryRetentionDays: 30,
	RetentionSweepHours:  6,
	NearbyRadiusKm:       1.0,
}

// Monas, central Jakarta
const (
	pickupLat = -6.175392
	pickupLon = 106.827153
)

func acceptedRide() *models.Ride {
	return &models.Ride{
		RideID:           uuid.New(),
		RiderID:          uuid.New(),
		DriverID:         uuid.New(),
		Status:           models.RideStatusAccepted,
		PickupLatitude:   pickupLat,
		PickupLongitude:  pickupLon,
		DropoffLatitude:  -6.2088,
		DropoffLongitude: 106.8456,
	}
}

// offsetLat returns a latitude roughly meters north of pickupLat. One degree
// of latitude is about 111.32 km.
func offsetLat(meters float64) float64 {
	return pickupLat + meters/111320.0
}

func TestEvaluate_ArrivedPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	mockGeofence.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.GeofenceEvent) (bool, error) {
			assert.Equal(t, models.GeofenceArrivedPickup, event.EventType)
			assert.Equal(t, ride.RideID, event.RideID)
			assert.Equal(t, 50.0, event.RadiusMeters)
			return true, nil
		})

	// 5 meters from the pickup point
	event, err := engine.Evaluate(context.Background(), ride, offsetLat(5), pickupLon)

	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, models.GeofenceArrivedPickup, event.EventType)
}

func TestEvaluate_ApproachingPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	mockGeofence.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(true, nil)

	// 120 meters out: inside approaching, outside arrived
	event, err := engine.Evaluate(context.Background(), ride, offsetLat(120), pickupLon)

	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, models.GeofenceApproachingPickup, event.EventType)
}

func TestEvaluate_ArrivedWinsOverApproaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	// Inside the arrived radius only the arrived event is considered,
	// even though the approaching radius is satisfied too
	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	mockGeofence.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.GeofenceEvent) (bool, error) {
			assert.Equal(t, models.GeofenceArrivedPickup, event.EventType)
			return true, nil
		})

	event, err := engine.Evaluate(context.Background(), ride, offsetLat(30), pickupLon)

	assert.NoError(t, err)
	assert.Equal(t, models.GeofenceArrivedPickup, event.EventType)
}

func TestEvaluate_AlreadyRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{
			models.GeofenceArrivedPickup: true,
		}, nil)

	event, err := engine.Evaluate(context.Background(), ride, offsetLat(5), pickupLon)

	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEvaluate_LostCreateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	mockGeofence.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(false, nil)

	event, err := engine.Evaluate(context.Background(), ride, offsetLat(5), pickupLon)

	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEvaluate_OutsideBothRadii(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()

	event, err := engine.Evaluate(context.Background(), ride, offsetLat(500), pickupLon)

	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEvaluate_InProgressTargetsDropoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()
	ride.Status = models.RideStatusInProgress

	mockGeofence.EXPECT().
		RecordedEventTypes(gomock.Any(), ride.RideID).
		Return(map[models.GeofenceEventType]bool{}, nil)
	mockGeofence.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(true, nil)

	event, err := engine.Evaluate(context.Background(), ride, ride.DropoffLatitude, ride.DropoffLongitude)

	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, models.GeofenceArrivedDropoff, event.EventType)
}

func TestEvaluate_NoTargetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeofence := mocks.NewMockGeofenceRepo(ctrl)
	engine := NewGeofenceEngine(mockGeofence, testTrackingCfg)

	ride := acceptedRide()
	ride.Status = models.RideStatusDriverArrived

	// No repo interaction expected
	event, err := engine.Evaluate(context.Background(), ride, pickupLat, pickupLon)

	assert.NoError(t, err)
	assert.Nil(t, event)
}
