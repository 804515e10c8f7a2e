package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/internal/utils"
	"github.com/saputra/antar/services/tracking"
	"github.com/saputra/antar/services/tracking/repository"
	"github.com/saputra/antar/services/tracking/usecase"
)

// defaultHistoryWindow is used when the history query gives no explicit range
const defaultHistoryWindow = 24 * time.Hour

// ResultBroadcaster fans accepted tracking results out to connected clients.
// HTTP-reported updates reach ride subscribers the same way websocket ones do.
type ResultBroadcaster interface {
	Dispatch(result *models.TrackingResult)
}

// TrackingHandler handles HTTP requests for tracking operations
type TrackingHandler struct {
	trackingUC  tracking.TrackingUC
	broadcaster ResultBroadcaster
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, broadcaster ResultBroadcaster) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC, broadcaster: broadcaster}
}

// ReportLocation accepts a driver location report over HTTP. The driver
// identity comes from the authenticated request.
func (h *TrackingHandler) ReportLocation(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing driver identity")
	}

	var pos models.DriverPosition
	if err := c.Bind(&pos); err != nil {
		logger.Error("Failed to bind location report", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.trackingUC.ReportLocation(c.Request().Context(), driverID, &pos)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "latitude or longitude out of range")
		}
		logger.Error("Failed to process location report",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to process location update")
	}

	h.broadcaster.Dispatch(result)

	return utils.SuccessResponse(c, http.StatusOK, "Location processed", map[string]interface{}{
		"success":   result.Updated,
		"timestamp": time.Now(),
		"latitude":  pos.Latitude,
		"longitude": pos.Longitude,
	})
}

// GetRideDriverLocation returns the latest driver location for a ride
func (h *TrackingHandler) GetRideDriverLocation(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	snapshot, err := h.trackingUC.GetRideDriverLocation(c.Request().Context(), rideID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRideNotFound):
			return utils.NotFoundResponse(c, "ride not found")
		case errors.Is(err, repository.ErrSnapshotNotFound):
			return utils.NotFoundResponse(c, "no location recorded for this driver")
		default:
			logger.Error("Failed to get ride driver location",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "failed to get driver location")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved", snapshot)
}

// GetDriverHistory returns a driver's location history within a window.
// Defaults to the last 24 hours when no range is given.
func (h *TrackingHandler) GetDriverHistory(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid driver id")
	}

	end := time.Now()
	start := end.Add(-defaultHistoryWindow)

	if raw := c.QueryParam("start"); raw != "" {
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid start time, expected RFC3339")
		}
	}
	if raw := c.QueryParam("end"); raw != "" {
		end, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid end time, expected RFC3339")
		}
	}
	if !start.Before(end) {
		return utils.BadRequestResponse(c, "start must be before end")
	}

	records, err := h.trackingUC.GetDriverHistory(c.Request().Context(), driverID, start, end)
	if err != nil {
		logger.Error("Failed to get driver history",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver history retrieved", records)
}

// GetRideETA returns the estimated distance and duration to the ride's
// current target point
func (h *TrackingHandler) GetRideETA(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	estimate, err := h.trackingUC.GetRideETA(c.Request().Context(), rideID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRideNotFound):
			return utils.NotFoundResponse(c, "ride not found")
		case errors.Is(err, repository.ErrSnapshotNotFound):
			return utils.NotFoundResponse(c, "no location recorded for this driver")
		case errors.Is(err, usecase.ErrNoGeoTarget):
			return utils.BadRequestResponse(c, "ride has no active geo target")
		default:
			logger.Error("Failed to estimate ride ETA",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "failed to estimate ETA")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "ETA estimated", estimate)
}

// GetNearbyDrivers returns drivers within a radius of a point
func (h *TrackingHandler) GetNearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	drivers, err := h.trackingUC.GetNearbyDrivers(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "latitude or longitude out of range")
		}
		logger.Error("Failed to find nearby drivers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to find nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}
