package models

import (
	"encoding/json"
	"time"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClaims holds the identity extracted from the bearer token at
// connection time
type WebSocketClaims struct {
	UserID string
	Role   string
}

// SubscribeRideRequest is the payload of rider subscribe/unsubscribe events
type SubscribeRideRequest struct {
	RideID string `json:"ride_id"`
}

// LocationUpdatedAck acknowledges a driver location report
type LocationUpdatedAck struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// DriverLocationEvent is fanned out to ride subscribers on accepted updates
type DriverLocationEvent struct {
	RideID    string    `json:"ride_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   *float64  `json:"heading,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// GeofenceEventNotification is fanned out to ride subscribers when a
// geofence event fires
type GeofenceEventNotification struct {
	RideID    string            `json:"ride_id"`
	EventType GeofenceEventType `json:"event_type"`
	Timestamp time.Time         `json:"timestamp"`
}

// RideStatusUpdate is sent to the rider of a ride when tracking triggers a
// lifecycle event
type RideStatusUpdate struct {
	RideID string `json:"ride_id"`
	Event  string `json:"event"`
}
