package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/saputra/antar/internal/pkg/circuitbreaker"
	httppkg "github.com/saputra/antar/internal/pkg/http"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/internal/utils"
	"github.com/saputra/antar/services/tracking"
)

const (
	estimateSourceRoutingAPI = "routing_api"
	estimateSourceFallback   = "haversine_fallback"
)

// routeEstimator resolves road distance and duration through the external
// routing service, degrading to scaled straight-line arithmetic whenever the
// service is unconfigured or a lookup fails. A circuit breaker skips lookups
// while the routing service is unhealthy.
type routeEstimator struct {
	client      *httppkg.Client
	breaker     *circuitbreaker.CircuitBreaker
	roadFactor  float64
	avgSpeedKmh float64
}

// NewRouteEstimator creates a route estimator from the routing configuration.
// An empty service URL disables lookups entirely.
func NewRouteEstimator(cfg models.RoutingConfig) tracking.RouteEstimator {
	var client *httppkg.Client
	if cfg.ServiceURL != "" {
		client = httppkg.NewClient(cfg.ServiceURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return &routeEstimator{
		client:      client,
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("routing-service")),
		roadFactor:  cfg.RoadFactor,
		avgSpeedKmh: cfg.AvgSpeedKmh,
	}
}

type routingResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// Estimate returns a road distance and duration estimate. It never fails.
func (e *routeEstimator) Estimate(ctx context.Context, fromLat, fromLon, toLat, toLon float64) *models.RouteEstimate {
	if e.client != nil {
		if est, err := e.lookupRoute(ctx, fromLat, fromLon, toLat, toLon); err == nil {
			return est
		} else {
			logger.Warn("Routing lookup failed, falling back to straight-line estimate",
				logger.Err(err))
		}
	}
	return e.fallback(fromLat, fromLon, toLat, toLon)
}

func (e *routeEstimator) lookupRoute(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (*models.RouteEstimate, error) {
	path := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?overview=false",
		fromLon, fromLat, toLon, toLat)

	var resp routingResponse
	err := e.breaker.Execute(ctx, func(ctx context.Context) error {
		return e.client.GetJSON(ctx, path, &resp)
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("routing service returned no routes")
	}

	route := resp.Routes[0]
	return &models.RouteEstimate{
		DistanceMeters:  route.Distance,
		Duration:        time.Duration(route.Duration * float64(time.Second)),
		DurationSeconds: route.Duration,
		Source:          estimateSourceRoutingAPI,
	}, nil
}

func (e *routeEstimator) fallback(fromLat, fromLon, toLat, toLon float64) *models.RouteEstimate {
	distance := utils.DistanceMeters(fromLat, fromLon, toLat, toLon) * e.roadFactor

	speedMS := e.avgSpeedKmh * 1000 / 3600
	var seconds float64
	if speedMS > 0 {
		seconds = distance / speedMS
	}

	return &models.RouteEstimate{
		DistanceMeters:  distance,
		Duration:        time.Duration(seconds * float64(time.Second)),
		DurationSeconds: seconds,
		Source:          estimateSourceFallback,
	}
}
