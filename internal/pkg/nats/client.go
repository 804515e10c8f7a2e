package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// reconnect settings shared by every service connection
const (
	reconnectWait = 2 * time.Second
	maxReconnects = 30
)

// Client wraps a NATS connection configured for the tracking services.
// Reconnection is handled by the underlying connection; in-flight publishes
// during an outage are buffered by the nats library.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server at the given URL
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe registers a handler for a subject and returns the subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
