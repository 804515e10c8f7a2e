package handler

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/saputra/antar/internal/pkg/middleware"
	"github.com/saputra/antar/internal/pkg/models"
	natspkg "github.com/saputra/antar/internal/pkg/nats"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
	"github.com/saputra/antar/services/tracking"
	httpHandler "github.com/saputra/antar/services/tracking/handler/http"
	wsHandler "github.com/saputra/antar/services/tracking/handler/websocket"
)

// Handler combines the HTTP, WebSocket and NATS surfaces of the tracking
// service.
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *wsHandler.WebSocketHandler
	trackingNATS *NATSHandler
	cfg          *models.Config
}

// NewHandler creates a new combined tracking handler
func NewHandler(
	trackingUC tracking.TrackingUC,
	rideRepo tracking.RideRepo,
	manager *wspkg.Manager,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	broadcaster := wsHandler.NewBroadcaster(manager.Registry())
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC, broadcaster),
		trackingWS:   wsHandler.NewWebSocketHandler(manager, trackingUC, rideRepo, broadcaster),
		trackingNATS: NewNATSHandler(natsClient, broadcaster),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// WebSocket endpoint authenticates during the handshake itself
	e.GET("/ws/tracking", h.trackingWS.HandleWebSocket)

	api := e.Group("/tracking", h.jwtMiddleware())

	api.POST("/location", h.trackingHTTP.ReportLocation, middleware.RequireRole("driver"))
	api.GET("/ride/:rideID/driver", h.trackingHTTP.GetRideDriverLocation)
	api.GET("/ride/:rideID/eta", h.trackingHTTP.GetRideETA)
	api.GET("/driver/:driverID/history", h.trackingHTTP.GetDriverHistory, middleware.RequireRole("admin"))
	api.GET("/nearby", h.trackingHTTP.GetNearbyDrivers, middleware.RequireRole("rider"))
}

// jwtMiddleware validates the bearer token and exposes the typed identity
// values the handlers and role guards expect
func (h *Handler) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Re-parse the token from the Authorization header to avoid type
			// conflicts between the middleware's jwt version and ours
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
				return
			}
			token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if rawID, exists := claims["user_id"]; exists {
				if userID, err := uuid.Parse(fmt.Sprintf("%v", rawID)); err == nil {
					c.Set("user_id", userID)
				}
			}
			if role, exists := claims["role"]; exists {
				c.Set("user_role", fmt.Sprintf("%v", role))
			}
		},
	})
}

// InitNATSConsumers starts the ride lifecycle consumers
func (h *Handler) InitNATSConsumers() error {
	return h.trackingNATS.InitConsumers()
}

// Close releases NATS subscriptions
func (h *Handler) Close() {
	h.trackingNATS.Close()
}
