package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saputra/antar/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEstimate_FallbackDistanceAndDuration(t *testing.T) {
	estimator := NewRouteEstimator(models.RoutingConfig{
		ServiceURL:     "",
		TimeoutSeconds: 5,
		RoadFactor:     1.3,
		AvgSpeedKmh:    20,
	})

	// Roughly 5 km apart along a meridian (0.045 degrees of latitude)
	est := estimator.Estimate(context.Background(), -6.2000, 106.8000, -6.1550, 106.8000)

	assert.Equal(t, "haversine_fallback", est.Source)
	// 5 km straight line scaled by the 1.3 road factor
	assert.InDelta(t, 6500, est.DistanceMeters, 150)
	// At 20 km/h the trip takes distance/5.56 seconds
	assert.InDelta(t, est.DistanceMeters/(20.0*1000/3600), est.DurationSeconds, 1)
	assert.InDelta(t, est.DurationSeconds, est.Duration.Seconds(), 0.001)
}

func TestEstimate_FallbackZeroDistance(t *testing.T) {
	estimator := NewRouteEstimator(models.RoutingConfig{
		RoadFactor:  1.3,
		AvgSpeedKmh: 20,
	})

	est := estimator.Estimate(context.Background(), -6.2, 106.8, -6.2, 106.8)

	assert.Equal(t, "haversine_fallback", est.Source)
	assert.InDelta(t, 0, est.DistanceMeters, 0.001)
	assert.InDelta(t, 0, est.DurationSeconds, 0.001)
}

func TestEstimate_RoutingAPISuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[{"distance":7421.5,"duration":1140.2}]}`))
	}))
	defer srv.Close()

	estimator := NewRouteEstimator(models.RoutingConfig{
		ServiceURL:     srv.URL,
		TimeoutSeconds: 5,
		RoadFactor:     1.3,
		AvgSpeedKmh:    20,
	})

	est := estimator.Estimate(context.Background(), -6.2, 106.8, -6.15, 106.85)

	assert.Equal(t, "routing_api", est.Source)
	assert.Equal(t, 7421.5, est.DistanceMeters)
	assert.Equal(t, 1140.2, est.DurationSeconds)
	assert.Equal(t, time.Duration(1140.2*float64(time.Second)), est.Duration)
}

func TestEstimate_RoutingAPIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	estimator := NewRouteEstimator(models.RoutingConfig{
		ServiceURL:     srv.URL,
		TimeoutSeconds: 5,
		RoadFactor:     1.3,
		AvgSpeedKmh:    20,
	})

	est := estimator.Estimate(context.Background(), -6.2000, 106.8000, -6.1550, 106.8000)

	assert.Equal(t, "haversine_fallback", est.Source)
	assert.InDelta(t, 6500, est.DistanceMeters, 150)
}

func TestEstimate_EmptyRoutesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	estimator := NewRouteEstimator(models.RoutingConfig{
		ServiceURL:     srv.URL,
		TimeoutSeconds: 5,
		RoadFactor:     1.3,
		AvgSpeedKmh:    20,
	})

	est := estimator.Estimate(context.Background(), -6.2000, 106.8000, -6.1550, 106.8000)

	assert.Equal(t, "haversine_fallback", est.Source)
}
