package constants

// NATS Subjects
const (
	// Published by the tracking service
	SubjectLocationUpdate = "location.update"
	SubjectGeofenceEvent  = "geofence.event"
	SubjectRideArrived    = "ride.arrived"

	// Consumed from the ride lifecycle owner
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"
)
