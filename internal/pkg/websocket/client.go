package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
)

// sendQueueSize bounds the per-connection outbound queue. A full queue
// drops messages for that connection only, so one slow peer never blocks
// the ingestion path.
const sendQueueSize = 64

// Client is one live WebSocket connection with its identity and a bounded
// outbound queue drained by a dedicated write pump.
type Client struct {
	ID     string
	UserID string
	Role   string

	conn      *websocket.Conn
	send      chan models.WSMessage
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id, userID, role string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		Role:   role,
		conn:   conn,
		send:   make(chan models.WSMessage, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// Send queues a message for delivery. Best-effort: if the connection's
// queue is full or the connection is closing, the message is dropped.
func (c *Client) Send(event string, data interface{}) {
	rawData, err := json.Marshal(data)
	if err != nil {
		logger.Error("Error marshaling websocket message",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	msg := models.WSMessage{Event: event, Data: rawData}

	select {
	case c.send <- msg:
	case <-c.done:
	default:
		logger.Warn("Dropping websocket message, send queue full",
			logger.String("conn_id", c.ID),
			logger.String("user_id", c.UserID),
			logger.String("event", event))
	}
}

// SendError queues an error event for delivery
func (c *Client) SendError(code, message string) {
	c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// writePump drains the send queue onto the wire. Runs in its own goroutine;
// exits when the connection closes or a write fails.
func (c *Client) writePump() {
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Debug("Websocket write failed",
					logger.String("conn_id", c.ID),
					logger.Err(err))
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// Close shuts the connection down; safe to call more than once
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
