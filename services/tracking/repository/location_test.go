package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saputra/antar/internal/pkg/constants"
	"github.com/saputra/antar/internal/pkg/database"
	"github.com/saputra/antar/internal/pkg/models"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &database.RedisClient{Client: client}
}

func floatPtr(v float64) *float64 { return &v }

func TestUpsertSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	mr, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	snapshot := &models.DriverLocationSnapshot{
		DriverID:  uuid.New(),
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Speed:     floatPtr(12.5),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("^\\s*INSERT INTO driver_locations").
		WithArgs(
			snapshot.DriverID, snapshot.Latitude, snapshot.Longitude,
			snapshot.Accuracy, snapshot.Speed, snapshot.Heading, snapshot.Altitude,
			snapshot.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertSnapshot(context.Background(), snapshot)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// The hot cache and the geo index are refreshed alongside
	key := fmt.Sprintf(constants.KeyDriverLocation, snapshot.DriverID)
	assert.Equal(t, "-6.175392", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "106.827153", mr.HGet(key, constants.FieldLongitude))
	assert.True(t, mr.Exists(constants.KeyDriverGeo))
}

func TestUpsertSnapshot_RedisDownStillSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	mr, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	mr.Close()

	mock.ExpectExec("^\\s*INSERT INTO driver_locations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertSnapshot(context.Background(), &models.DriverLocationSnapshot{
		DriverID:  uuid.New(),
		Latitude:  -6.2,
		Longitude: 106.8,
		UpdatedAt: time.Now(),
	})

	assert.NoError(t, err)
}

func TestGetSnapshot_CacheHit(t *testing.T) {
	db, _ := newMockDB(t)
	mr, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	driverID := uuid.New()
	now := time.Now().Truncate(time.Second)

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	mr.HSet(key,
		constants.FieldLatitude, "-6.175392",
		constants.FieldLongitude, "106.827153",
		constants.FieldTimestamp, fmt.Sprintf("%d", now.Unix()),
	)

	// No Postgres expectation: the cache must satisfy the lookup
	snapshot, err := repo.GetSnapshot(context.Background(), driverID)

	assert.NoError(t, err)
	assert.Equal(t, driverID, snapshot.DriverID)
	assert.Equal(t, -6.175392, snapshot.Latitude)
	assert.Equal(t, 106.827153, snapshot.Longitude)
	assert.Equal(t, now.Unix(), snapshot.UpdatedAt.Unix())
}

func TestGetSnapshot_CacheMissFallsBackToPostgres(t *testing.T) {
	db, mock := newMockDB(t)
	_, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	driverID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"driver_id", "latitude", "longitude", "accuracy", "speed", "heading", "altitude", "updated_at",
	}).AddRow(driverID, -6.19, 106.81, nil, nil, nil, nil, now)
	mock.ExpectQuery("^\\s*SELECT (.+) FROM driver_locations").
		WithArgs(driverID).
		WillReturnRows(rows)

	snapshot, err := repo.GetSnapshot(context.Background(), driverID)

	assert.NoError(t, err)
	assert.Equal(t, -6.19, snapshot.Latitude)
	assert.Nil(t, snapshot.Speed)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	_, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	driverID := uuid.New()
	mock.ExpectQuery("^\\s*SELECT (.+) FROM driver_locations").
		WithArgs(driverID).
		WillReturnError(sql.ErrNoRows)

	snapshot, err := repo.GetSnapshot(context.Background(), driverID)

	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.Nil(t, snapshot)
}

func TestAppendAndGetHistory(t *testing.T) {
	db, mock := newMockDB(t)
	_, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	driverID := uuid.New()
	now := time.Now()

	mock.ExpectExec("^\\s*INSERT INTO location_history").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendHistory(context.Background(), &models.LocationHistoryRecord{
		DriverID:   driverID,
		Latitude:   -6.18,
		Longitude:  106.82,
		RecordedAt: now,
	})
	assert.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "driver_id", "latitude", "longitude", "accuracy", "speed", "heading", "altitude", "recorded_at",
	}).
		AddRow(1, driverID, -6.18, 106.82, nil, nil, nil, nil, now.Add(-time.Minute)).
		AddRow(2, driverID, -6.17, 106.83, nil, nil, nil, nil, now)
	mock.ExpectQuery("^\\s*SELECT (.+) FROM location_history").
		WillReturnRows(rows)

	records, err := repo.GetHistory(context.Background(), driverID, now.Add(-time.Hour), now)

	assert.NoError(t, err)
	require.Len(t, records, 2)
	// Oldest first
	assert.True(t, records[0].RecordedAt.Before(records[1].RecordedAt))
}

func TestPruneHistory(t *testing.T) {
	db, mock := newMockDB(t)
	_, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	cutoff := time.Now().AddDate(0, 0, -30)
	mock.ExpectExec("^\\s*DELETE FROM location_history").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 42))

	pruned, err := repo.PruneHistory(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), pruned)
}

func TestNearbyDrivers(t *testing.T) {
	db, _ := newMockDB(t)
	_, redisClient := setupMiniredis(t)
	repo := NewLocationRepository(db, redisClient)

	near := uuid.New()
	far := uuid.New()

	// One driver near Monas, one in Bandung
	ctx := context.Background()
	require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, 106.827153, -6.175392, near.String()))
	require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, 107.6098, -6.9147, far.String()))

	drivers, err := repo.NearbyDrivers(ctx, -6.1750, 106.8270, 1.0)

	assert.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, near.String(), drivers[0].DriverID)
	assert.LessOrEqual(t, drivers[0].DistanceKm, 1.0)
}
