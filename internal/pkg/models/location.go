package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographical coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// DriverPosition is a raw location report from a driver device.
// Optional telemetry fields are pointers so absent values survive the trip
// through JSON untouched.
type DriverPosition struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// DriverLocationSnapshot is the single mutable location row per driver,
// overwritten on every accepted update.
type DriverLocationSnapshot struct {
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Speed     *float64  `json:"speed,omitempty" db:"speed"`
	Heading   *float64  `json:"heading,omitempty" db:"heading"`
	Altitude  *float64  `json:"altitude,omitempty" db:"altitude"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// LocationHistoryRecord is an immutable append-only copy of an accepted
// update, subject to retention pruning.
type LocationHistoryRecord struct {
	ID         int64     `json:"id" db:"id"`
	DriverID   uuid.UUID `json:"driver_id" db:"driver_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Speed      *float64  `json:"speed,omitempty" db:"speed"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	Altitude   *float64  `json:"altitude,omitempty" db:"altitude"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// NearbyDriver is a driver returned from a geo radius lookup
type NearbyDriver struct {
	DriverID   string  `json:"driver_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// LocationUpdateEvent is published to NATS for every accepted update tied to
// an active ride, consumed by billing and notification services.
type LocationUpdateEvent struct {
	RideID    string    `json:"ride_id"`
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// RouteEstimate is the result of a routing lookup or its arithmetic fallback
type RouteEstimate struct {
	DistanceMeters  float64       `json:"distance_meters"`
	Duration        time.Duration `json:"duration"`
	DurationSeconds float64       `json:"duration_seconds"`
	Source          string        `json:"source"` // "routing_api" or "haversine_fallback"
}
