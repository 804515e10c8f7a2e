package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/saputra/antar/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo server and drains it on SIGINT or SIGTERM.
// Cleanup hooks registered with OnShutdown run after the listener has
// stopped, so consumers are only closed once no request still needs them.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
	hooks  []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// OnShutdown registers a cleanup hook to run during shutdown. Hooks run
// in registration order; a failing hook does not stop the rest.
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.hooks = append(s.hooks, fn)
}

// Start starts the server and blocks until a shutdown signal arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// SIGTERM from Kubernetes/Docker, SIGINT from terminal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the listener, then runs the registered cleanup hooks
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	for i, fn := range s.hooks {
		if hookErr := fn(ctx); hookErr != nil {
			s.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(hookErr))
		}
	}

	if err == nil {
		s.logger.Info("Server shutdown completed")
	}
	return err
}
