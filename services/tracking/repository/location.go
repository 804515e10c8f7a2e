package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/database"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/internal/utils"
)

const (
	// snapshotTTL is how long the hot snapshot stays in Redis
	snapshotTTL = 24 * time.Hour

	// geohashPrecision gives ~5m cells, enough for cache display purposes
	geohashPrecision = 9
)

// ErrSnapshotNotFound is returned when no location is known for a driver
var ErrSnapshotNotFound = errors.New("driver location not found")

// LocationRepo persists snapshots and history in Postgres with a Redis
// hot cache and GEO index in front of the snapshot
type LocationRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// UpsertSnapshot overwrites the driver's single mutable location row and
// refreshes the Redis cache and GEO index
func (r *LocationRepo) UpsertSnapshot(ctx context.Context, snapshot *models.DriverLocationSnapshot) error {
	query := `
		INSERT INTO driver_locations (
			driver_id, latitude, longitude, accuracy, speed, heading, altitude, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (driver_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			accuracy = EXCLUDED.accuracy,
			speed = EXCLUDED.speed,
			heading = EXCLUDED.heading,
			altitude = EXCLUDED.altitude,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		snapshot.DriverID,
		snapshot.Latitude,
		snapshot.Longitude,
		snapshot.Accuracy,
		snapshot.Speed,
		snapshot.Heading,
		snapshot.Altitude,
		snapshot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert driver location: %w", err)
	}

	r.cacheSnapshot(ctx, snapshot)
	return nil
}

// cacheSnapshot refreshes the Redis hash and GEO set. Cache failures are
// logged, not surfaced; Postgres stays the source of truth.
func (r *LocationRepo) cacheSnapshot(ctx context.Context, snapshot *models.DriverLocationSnapshot) {
	key := fmt.Sprintf(constants.KeyDriverLocation, snapshot.DriverID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(snapshot.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(snapshot.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeLocation(snapshot.Latitude, snapshot.Longitude, geohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(snapshot.UpdatedAt.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		logger.Warn("Failed to cache driver location",
			logger.String("driver_id", snapshot.DriverID.String()),
			logger.Err(err))
		return
	}
	if err := r.redisClient.Expire(ctx, key, snapshotTTL); err != nil {
		logger.Warn("Failed to set snapshot TTL",
			logger.String("driver_id", snapshot.DriverID.String()),
			logger.Err(err))
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, snapshot.Longitude, snapshot.Latitude, snapshot.DriverID.String()); err != nil {
		logger.Warn("Failed to update driver geo index",
			logger.String("driver_id", snapshot.DriverID.String()),
			logger.Err(err))
	}
}

// GetSnapshot returns the latest known location for a driver, trying the
// Redis cache before Postgres
func (r *LocationRepo) GetSnapshot(ctx context.Context, driverID uuid.UUID) (*models.DriverLocationSnapshot, error) {
	if snapshot := r.cachedSnapshot(ctx, driverID); snapshot != nil {
		return snapshot, nil
	}

	var snapshot models.DriverLocationSnapshot
	query := `
		SELECT driver_id, latitude, longitude, accuracy, speed, heading, altitude, updated_at
		FROM driver_locations
		WHERE driver_id = $1
	`
	if err := r.db.GetContext(ctx, &snapshot, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	return &snapshot, nil
}

func (r *LocationRepo) cachedSnapshot(ctx context.Context, driverID uuid.UUID) *models.DriverLocationSnapshot {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil || len(values) != 3 || values[0] == "" || values[1] == "" || values[2] == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(values[0], 64)
	lng, errLng := strconv.ParseFloat(values[1], 64)
	ts, errTS := strconv.ParseInt(values[2], 10, 64)
	if errLat != nil || errLng != nil || errTS != nil {
		return nil
	}

	return &models.DriverLocationSnapshot{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		UpdatedAt: time.Unix(ts, 0),
	}
}

// AppendHistory appends an immutable history record
func (r *LocationRepo) AppendHistory(ctx context.Context, record *models.LocationHistoryRecord) error {
	query := `
		INSERT INTO location_history (
			driver_id, latitude, longitude, accuracy, speed, heading, altitude, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.DriverID,
		record.Latitude,
		record.Longitude,
		record.Accuracy,
		record.Speed,
		record.Heading,
		record.Altitude,
		record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append location history: %w", err)
	}
	return nil
}

// GetHistory returns history records for a driver within a time window,
// oldest first
func (r *LocationRepo) GetHistory(ctx context.Context, driverID uuid.UUID, start, end time.Time) ([]*models.LocationHistoryRecord, error) {
	query := `
		SELECT id, driver_id, latitude, longitude, accuracy, speed, heading, altitude, recorded_at
		FROM location_history
		WHERE driver_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
		ORDER BY recorded_at ASC
	`

	records := []*models.LocationHistoryRecord{}
	if err := r.db.SelectContext(ctx, &records, query, driverID, start, end); err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return records, nil
}

// PruneHistory deletes history records older than the cutoff and returns
// the number of rows removed
func (r *LocationRepo) PruneHistory(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM location_history WHERE recorded_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune location history: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return deleted, nil
}

// NearbyDrivers returns drivers within radiusKm of a point from the Redis
// GEO index
func (r *LocationRepo) NearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, lon, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}

	drivers := make([]*models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		drivers = append(drivers, &models.NearbyDriver{
			DriverID:   loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
	}
	return drivers, nil
}
