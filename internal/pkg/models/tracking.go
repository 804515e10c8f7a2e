package models

// TrackingResult is the outcome of one driver location report. It is the
// sole input to the broadcaster.
type TrackingResult struct {
	// Updated is false when the report was rate-limited or the driver
	// profile is unknown; no side effects happened in that case.
	Updated bool

	// Snapshot is the persisted location row when Updated is true
	Snapshot *DriverLocationSnapshot

	// Ride is the driver's active ride, if any
	Ride *Ride

	// Event is the geofence event fired by this report, if any
	Event *GeofenceEvent
}
