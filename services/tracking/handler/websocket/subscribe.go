package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
	"github.com/saputra/antar/services/tracking/repository"
)

// handleSubscribeRide processes a rider:subscribe:ride event. The caller
// must be a participant of the ride or an admin. Subscribing twice is a
// no-op.
func (h *WebSocketHandler) handleSubscribeRide(client *wspkg.Client, data json.RawMessage) error {
	rideID, ride, ok := h.resolveRide(client, data)
	if !ok {
		return nil
	}

	if !h.mayObserveRide(client, ride) {
		client.SendError(constants.ErrorForbidden, "Not a participant of this ride")
		return nil
	}

	h.manager.Registry().Subscribe(client.ID, rideID.String())
	logger.Debug("Ride subscription added",
		logger.String("conn_id", client.ID),
		logger.String("ride_id", rideID.String()))
	return nil
}

// handleUnsubscribeRide processes a rider:unsubscribe:ride event.
// Unsubscribing from a ride the connection never subscribed to is a no-op.
func (h *WebSocketHandler) handleUnsubscribeRide(client *wspkg.Client, data json.RawMessage) error {
	var req models.SubscribeRideRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.SendError(constants.ErrorInvalidFormat, "Invalid subscribe payload")
		return nil
	}

	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		client.SendError(constants.ErrorInvalidRide, "Invalid ride id")
		return nil
	}

	h.manager.Registry().Unsubscribe(client.ID, rideID.String())
	return nil
}

func (h *WebSocketHandler) resolveRide(client *wspkg.Client, data json.RawMessage) (uuid.UUID, *models.Ride, bool) {
	var req models.SubscribeRideRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.SendError(constants.ErrorInvalidFormat, "Invalid subscribe payload")
		return uuid.Nil, nil, false
	}

	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		client.SendError(constants.ErrorInvalidRide, "Invalid ride id")
		return uuid.Nil, nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	ride, err := h.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		if errors.Is(err, repository.ErrRideNotFound) {
			client.SendError(constants.ErrorInvalidRide, "Ride not found")
			return uuid.Nil, nil, false
		}
		logger.Error("Failed to load ride for subscription",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		client.SendError(constants.ErrorInternalError, "Failed to subscribe")
		return uuid.Nil, nil, false
	}

	return rideID, ride, true
}

func (h *WebSocketHandler) mayObserveRide(client *wspkg.Client, ride *models.Ride) bool {
	if client.Role == "admin" {
		return true
	}
	return client.UserID == ride.RiderID.String() || client.UserID == ride.DriverID.String()
}
