package websocket

import (
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/models"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
)

// Broadcaster fans tracking results out to connected clients. All sends are
// best-effort; slow subscribers drop messages instead of blocking ingestion.
type Broadcaster struct {
	registry *wspkg.Registry
}

// NewBroadcaster creates a broadcaster over the connection registry
func NewBroadcaster(registry *wspkg.Registry) *Broadcaster {
	return &Broadcaster{registry: registry}
}

// Dispatch fans out one tracking result: the driver location to ride
// subscribers, the geofence event to ride subscribers, and the status
// change to the rider's own connections.
func (b *Broadcaster) Dispatch(result *models.TrackingResult) {
	if result == nil || !result.Updated || result.Ride == nil {
		return
	}

	rideID := result.Ride.RideID.String()

	if result.Snapshot != nil {
		b.broadcastToRide(rideID, constants.EventDriverLocation, &models.DriverLocationEvent{
			RideID:    rideID,
			Latitude:  result.Snapshot.Latitude,
			Longitude: result.Snapshot.Longitude,
			Heading:   result.Snapshot.Heading,
			Speed:     result.Snapshot.Speed,
			Timestamp: result.Snapshot.UpdatedAt,
		})
	}

	if result.Event != nil {
		b.broadcastToRide(rideID, constants.EventGeofenceEvent, &models.GeofenceEventNotification{
			RideID:    rideID,
			EventType: result.Event.EventType,
			Timestamp: result.Event.TriggeredAt,
		})

		// Every fired event reaches the rider directly; they may not have
		// subscribed yet. Pickup arrival reports the status transition,
		// the other events carry their own name.
		event := string(result.Event.EventType)
		if result.Ride.Status == models.RideStatusDriverArrived &&
			result.Event.EventType == models.GeofenceArrivedPickup {
			event = string(models.RideStatusDriverArrived)
		}
		b.NotifyRider(result.Ride.RiderID.String(), &models.RideStatusUpdate{
			RideID: rideID,
			Event:  event,
		})
	}
}

// NotifyRider sends a ride status update to every connection of a rider
func (b *Broadcaster) NotifyRider(riderID string, update *models.RideStatusUpdate) {
	for _, client := range b.registry.ClientsOfUser(riderID) {
		client.Send(constants.EventRideStatusUpdate, update)
	}
}

// BroadcastRideStatus sends a ride status update to every ride subscriber
func (b *Broadcaster) BroadcastRideStatus(rideID string, update *models.RideStatusUpdate) {
	b.broadcastToRide(rideID, constants.EventRideStatusUpdate, update)
}

func (b *Broadcaster) broadcastToRide(rideID, event string, data interface{}) {
	for _, client := range b.registry.SubscribersOf(rideID) {
		client.Send(event, data)
	}
}
