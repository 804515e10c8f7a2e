package websocket

import (
	"github.com/labstack/echo/v4"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/models"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
	"github.com/saputra/antar/services/tracking"
)

// WebSocketHandler owns the tracking WebSocket protocol: one dispatch
// switch over the client event types.
type WebSocketHandler struct {
	manager     *wspkg.Manager
	trackingUC  tracking.TrackingUC
	rideRepo    tracking.RideRepo
	broadcaster *Broadcaster
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager, trackingUC tracking.TrackingUC, rideRepo tracking.RideRepo, broadcaster *Broadcaster) *WebSocketHandler {
	return &WebSocketHandler{
		manager:     manager,
		trackingUC:  trackingUC,
		rideRepo:    rideRepo,
		broadcaster: broadcaster,
	}
}

// HandleWebSocket upgrades the request and serves the connection
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.dispatch)
}

// dispatch routes one inbound message by event type
func (h *WebSocketHandler) dispatch(client *wspkg.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventDriverLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case constants.EventSubscribeRide:
		return h.handleSubscribeRide(client, msg.Data)
	case constants.EventUnsubscribeRide:
		return h.handleUnsubscribeRide(client, msg.Data)
	default:
		client.SendError(constants.ErrorUnknownEvent, "Unknown event: "+msg.Event)
		return nil
	}
}
