package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/saputra/antar/internal/pkg/jwt"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
)

// DispatchFunc handles one inbound message from a client
type DispatchFunc func(client *Client, msg models.WSMessage) error

// DisconnectFunc is invoked after a connection's registry state is purged
type DisconnectFunc func(client *Client)

// Manager authenticates and manages WebSocket connections
type Manager struct {
	registry *Registry
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig, registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Registry returns the connection registry
func (m *Manager) Registry() *Registry {
	return m.registry
}

// HandleConnection authenticates the request, upgrades it, registers the
// connection, and runs the read loop. Authentication failure terminates the
// connection before anything is registered. The connection's registry state
// is purged synchronously when the read loop exits.
func (m *Manager) HandleConnection(c echo.Context, dispatch DispatchFunc) error {
	claims, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := newClient(uuid.NewString(), claims.UserID, claims.Role, ws)
	m.registry.Register(client)
	go client.writePump()

	defer func() {
		m.registry.Deregister(client.ID)
		client.Close()
	}()

	logger.Info("Websocket connected",
		logger.String("conn_id", client.ID),
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	return m.readLoop(client, dispatch)
}

// readLoop consumes inbound messages until the connection drops
func (m *Manager) readLoop(client *Client, dispatch DispatchFunc) error {
	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Websocket read error",
					logger.String("conn_id", client.ID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			client.SendError("invalid_format", "Invalid message format")
			continue
		}

		if err := dispatch(client, msg); err != nil {
			logger.Error("Error handling websocket message",
				logger.String("conn_id", client.ID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// authenticateClient resolves the bearer credential from the Authorization
// header or the token query parameter, first match wins
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClaims, error) {
	token := bearerToken(c)
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer credential")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Websocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, ok := (*claims)["user_id"]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing user_id claim")
	}
	role, ok := (*claims)["role"]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing role claim")
	}

	return &models.WebSocketClaims{
		UserID: fmt.Sprintf("%v", userID),
		Role:   fmt.Sprintf("%v", role),
	}, nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	return c.QueryParam("token")
}
