package gateway

import (
	"context"
	"time"

	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/models"
	natspkg "github.com/saputra/antar/internal/pkg/nats"
	"github.com/saputra/antar/internal/pkg/retry"
	"github.com/saputra/antar/services/tracking"
)

type trackingGW struct {
	producer *natspkg.Producer
	retrier  *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway. Publishes are retried with a
// short backoff since callers treat publish failures as non-fatal.
func NewTrackingGW(producer *natspkg.Producer) tracking.TrackingGW {
	return &trackingGW{
		producer: producer,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
		}),
	}
}

func (g *trackingGW) publish(ctx context.Context, subject string, message interface{}) error {
	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(subject, message)
	})
}

// PublishLocationUpdate publishes an accepted location update to NATS
func (g *trackingGW) PublishLocationUpdate(ctx context.Context, event *models.LocationUpdateEvent) error {
	return g.publish(ctx, constants.SubjectLocationUpdate, event)
}

// PublishGeofenceEvent publishes a newly recorded geofence event to NATS
func (g *trackingGW) PublishGeofenceEvent(ctx context.Context, event *models.GeofenceEvent) error {
	return g.publish(ctx, constants.SubjectGeofenceEvent, event)
}

// PublishRideArrived notifies sibling services that the driver reached the
// pickup point and the ride moved to driver_arrived
func (g *trackingGW) PublishRideArrived(ctx context.Context, ride *models.Ride) error {
	return g.publish(ctx, constants.SubjectRideArrived, ride)
}
