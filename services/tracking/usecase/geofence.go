package usecase

import (
	"context"
	"time"

	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/internal/utils"
	"github.com/saputra/antar/services/tracking"
)

// GeofenceEngine evaluates driver positions against the active ride's
// target point and records transition events. Each event type fires at most
// once per ride; the uniqueness is enforced by the event store, so
// concurrent evaluations for the same driver cannot double-fire.
type GeofenceEngine struct {
	geofenceRepo       tracking.GeofenceRepo
	arrivedRadiusM     float64
	approachingRadiusM float64
}

// NewGeofenceEngine creates a new geofence engine
func NewGeofenceEngine(geofenceRepo tracking.GeofenceRepo, cfg models.TrackingConfig) *GeofenceEngine {
	return &GeofenceEngine{
		geofenceRepo:       geofenceRepo,
		arrivedRadiusM:     cfg.ArrivedRadiusM,
		approachingRadiusM: cfg.ApproachingRadiusM,
	}
}

// Evaluate checks the position against the ride's current target and
// records at most one new event. A position inside the arrived radius fires
// only the arrived event; the approaching event is considered only outside
// it. Returns nil when nothing new fired.
func (e *GeofenceEngine) Evaluate(ctx context.Context, ride *models.Ride, lat, lon float64) (*models.GeofenceEvent, error) {
	targetLat, targetLon, toPickup, ok := ride.GeoTarget()
	if !ok {
		return nil, nil
	}

	distance := utils.DistanceMeters(lat, lon, targetLat, targetLon)

	var eventType models.GeofenceEventType
	var radius float64
	switch {
	case distance <= e.arrivedRadiusM:
		radius = e.arrivedRadiusM
		if toPickup {
			eventType = models.GeofenceArrivedPickup
		} else {
			eventType = models.GeofenceArrivedDropoff
		}
	case distance <= e.approachingRadiusM:
		radius = e.approachingRadiusM
		if toPickup {
			eventType = models.GeofenceApproachingPickup
		} else {
			eventType = models.GeofenceApproachingDropoff
		}
	default:
		return nil, nil
	}

	recorded, err := e.geofenceRepo.RecordedEventTypes(ctx, ride.RideID)
	if err != nil {
		return nil, err
	}
	if recorded[eventType] {
		return nil, nil
	}

	event := &models.GeofenceEvent{
		RideID:       ride.RideID,
		EventType:    eventType,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
		TriggeredAt:  time.Now(),
	}

	created, err := e.geofenceRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	if !created {
		// Lost the race against a concurrent evaluation
		return nil, nil
	}
	return event, nil
}
