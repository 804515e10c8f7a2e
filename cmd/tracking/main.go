package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/saputra/antar/internal/pkg/config"
	"github.com/saputra/antar/internal/pkg/database"
	"github.com/saputra/antar/internal/pkg/health"
	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/middleware"
	natspkg "github.com/saputra/antar/internal/pkg/nats"
	nrpkg "github.com/saputra/antar/internal/pkg/newrelic"
	"github.com/saputra/antar/internal/pkg/server"
	wspkg "github.com/saputra/antar/internal/pkg/websocket"
	"github.com/saputra/antar/services/tracking/gateway"
	"github.com/saputra/antar/services/tracking/handler"
	"github.com/saputra/antar/services/tracking/repository"
	"github.com/saputra/antar/services/tracking/usecase"
)

const serviceName = "tracking-service"

func main() {
	configs := config.InitConfig(".env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Postgres
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	locationRepo := repository.NewLocationRepository(pgClient.GetDB(), redisClient)
	geofenceRepo := repository.NewGeofenceRepository(pgClient.GetDB())
	rideRepo := repository.NewRideRepository(pgClient.GetDB())
	driverRepo := repository.NewDriverRepository(pgClient.GetDB())

	// Gateway and estimator
	trackingGW := gateway.NewTrackingGW(natspkg.NewProducer(natsClient))
	estimator := usecase.NewRouteEstimator(configs.Routing)

	// Usecase
	trackingUC := usecase.NewTrackingUC(
		configs.Tracking,
		locationRepo,
		rideRepo,
		driverRepo,
		geofenceRepo,
		trackingGW,
		estimator,
	)

	// History retention
	retention := usecase.NewRetentionWorker(locationRepo, configs.Tracking)
	retention.Start()
	defer retention.Stop()

	// Websocket connection management
	registry := wspkg.NewRegistry()
	manager := wspkg.NewManager(configs.JWT, registry)

	// Handlers
	trackingHandler := handler.NewHandler(trackingUC, rideRepo, manager, natsClient, configs)

	if err := trackingHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(middleware.NewRelicMiddleware(nrApp))
	}

	health.RegisterHealthEndpoints(e, serviceName)
	trackingHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	srv.OnShutdown(func(ctx context.Context) error {
		trackingHandler.Close()
		return nil
	})
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.Err(err))
	}
}
