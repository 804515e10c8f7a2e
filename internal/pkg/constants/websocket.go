package constants

// WebSocket event types. This is the whole protocol surface; the dispatch
// switch in the websocket handler must cover every client event.
const (
	// Client events
	EventDriverLocationUpdate = "driver:location:update"
	EventSubscribeRide        = "rider:subscribe:ride"
	EventUnsubscribeRide      = "rider:unsubscribe:ride"

	// Server events
	EventLocationUpdated  = "location:updated"
	EventDriverLocation   = "driver:location"
	EventGeofenceEvent    = "geofence:event"
	EventRideStatusUpdate = "ride:status_update"
	EventError            = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorUnauthorized    = "unauthorized"
	ErrorForbidden       = "forbidden"
	ErrorInvalidLocation = "invalid_location"
	ErrorInvalidRide     = "invalid_ride"
	ErrorInternalError   = "internal_error"
	ErrorUnknownEvent    = "unknown_event"
)
