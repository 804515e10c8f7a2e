package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested     RideStatus = "requested"
	RideStatusAccepted      RideStatus = "accepted"
	RideStatusDriverArrived RideStatus = "driver_arrived"
	RideStatusInProgress    RideStatus = "in_progress"
	RideStatusCompleted     RideStatus = "completed"
	RideStatusCancelled     RideStatus = "cancelled"
)

// ActiveRideStatuses are the statuses in which a ride has live driver tracking
var ActiveRideStatuses = []RideStatus{
	RideStatusAccepted,
	RideStatusDriverArrived,
	RideStatusInProgress,
}

// Ride represents a ride record as read from the ride store
type Ride struct {
	RideID           uuid.UUID  `json:"ride_id" db:"ride_id"`
	RiderID          uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID         uuid.UUID  `json:"driver_id" db:"driver_id"`
	Status           RideStatus `json:"status" db:"status"`
	PickupLatitude   float64    `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude  float64    `json:"pickup_longitude" db:"pickup_longitude"`
	DropoffLatitude  float64    `json:"dropoff_latitude" db:"dropoff_latitude"`
	DropoffLongitude float64    `json:"dropoff_longitude" db:"dropoff_longitude"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// GeoTarget returns the coordinate the driver is currently heading to,
// derived from ride status. Accepted rides target the pickup point,
// in-progress rides the dropoff point; other statuses have no target.
func (r *Ride) GeoTarget() (lat, lon float64, toPickup bool, ok bool) {
	switch r.Status {
	case RideStatusAccepted:
		return r.PickupLatitude, r.PickupLongitude, true, true
	case RideStatusInProgress:
		return r.DropoffLatitude, r.DropoffLongitude, false, true
	default:
		return 0, 0, false, false
	}
}
