package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	natspkg "github.com/saputra/antar/internal/pkg/nats"
	wshandler "github.com/saputra/antar/services/tracking/handler/websocket"
)

// NATSHandler consumes ride lifecycle events from sibling services and
// relays them to connected ride subscribers.
type NATSHandler struct {
	natsClient  *natspkg.Client
	broadcaster *wshandler.Broadcaster
	subs        []*nats.Subscription
}

// NewNATSHandler creates a new tracking NATS handler
func NewNATSHandler(natsClient *natspkg.Client, broadcaster *wshandler.Broadcaster) *NATSHandler {
	return &NATSHandler{
		natsClient:  natsClient,
		broadcaster: broadcaster,
	}
}

// InitConsumers subscribes to the ride lifecycle subjects
func (h *NATSHandler) InitConsumers() error {
	subjects := map[string]models.RideStatus{
		constants.SubjectRideCompleted: models.RideStatusCompleted,
		constants.SubjectRideCancelled: models.RideStatusCancelled,
	}

	for subject, status := range subjects {
		status := status
		sub, err := h.natsClient.Subscribe(subject, func(msg *nats.Msg) {
			h.handleRideLifecycle(msg, status)
		})
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Tracking NATS consumers initialized",
		logger.Int("subjects", len(h.subs)))
	return nil
}

// handleRideLifecycle relays a terminal ride event to ride subscribers
func (h *NATSHandler) handleRideLifecycle(msg *nats.Msg, status models.RideStatus) {
	var ride models.Ride
	if err := json.Unmarshal(msg.Data, &ride); err != nil {
		logger.Error("Failed to unmarshal ride lifecycle event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.broadcaster.BroadcastRideStatus(ride.RideID.String(), &models.RideStatusUpdate{
		RideID: ride.RideID.String(),
		Event:  string(status),
	})
}

// Close drains all subscriptions
func (h *NATSHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe NATS consumer", logger.Err(err))
		}
	}
}
