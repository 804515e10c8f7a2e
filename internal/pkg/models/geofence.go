package models

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceEventType identifies a geofence transition for a ride
type GeofenceEventType string

const (
	GeofenceApproachingPickup  GeofenceEventType = "APPROACHING_PICKUP"
	GeofenceArrivedPickup      GeofenceEventType = "ARRIVED_PICKUP"
	GeofenceApproachingDropoff GeofenceEventType = "APPROACHING_DROPOFF"
	GeofenceArrivedDropoff     GeofenceEventType = "ARRIVED_DROPOFF"
)

// GeofenceEvent is an append-only record of a geofence transition.
// At most one event of each type exists per ride.
type GeofenceEvent struct {
	ID           int64             `json:"id" db:"id"`
	RideID       uuid.UUID         `json:"ride_id" db:"ride_id"`
	EventType    GeofenceEventType `json:"event_type" db:"event_type"`
	Latitude     float64           `json:"latitude" db:"latitude"`
	Longitude    float64           `json:"longitude" db:"longitude"`
	RadiusMeters float64           `json:"radius_meters" db:"radius_meters"`
	TriggeredAt  time.Time         `json:"triggered_at" db:"triggered_at"`
}
