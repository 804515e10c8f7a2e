package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
	"github.com/saputra/antar/services/tracking/usecase"
)

const reportTimeout = 10 * time.Second

// handleLocationUpdate processes a driver:location:update event. Only
// drivers may report; the driver identity always comes from the
// authenticated connection, never from the payload.
func (h *WebSocketHandler) handleLocationUpdate(client *wspkg.Client, data json.RawMessage) error {
	if client.Role != "driver" {
		client.SendError(constants.ErrorForbidden, "Only drivers may report locations")
		return nil
	}

	driverID, err := uuid.Parse(client.UserID)
	if err != nil {
		client.SendError(constants.ErrorUnauthorized, "Invalid driver identity")
		return nil
	}

	var pos models.DriverPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		client.SendError(constants.ErrorInvalidFormat, "Invalid location payload")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	result, err := h.trackingUC.ReportLocation(ctx, driverID, &pos)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			client.SendError(constants.ErrorInvalidLocation, "Latitude or longitude out of range")
			return nil
		}
		logger.Error("Failed to process location report",
			logger.String("driver_id", client.UserID),
			logger.Err(err))
		client.SendError(constants.ErrorInternalError, "Failed to process location update")
		return nil
	}

	client.Send(constants.EventLocationUpdated, models.LocationUpdatedAck{
		Success:   result.Updated,
		Timestamp: time.Now(),
	})

	h.broadcaster.Dispatch(result)
	return nil
}
