package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/saputra/antar/internal/pkg/logger"
	"github.com/saputra/antar/internal/pkg/models"
	"github.com/saputra/antar/services/tracking"
)

// RetentionWorker periodically prunes location history records older than
// the configured retention window.
type RetentionWorker struct {
	locationRepo tracking.LocationRepo
	retention    time.Duration
	sweepEvery   time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRetentionWorker creates a retention worker from the tracking configuration
func NewRetentionWorker(locationRepo tracking.LocationRepo, cfg models.TrackingConfig) *RetentionWorker {
	return &RetentionWorker{
		locationRepo: locationRepo,
		retention:    time.Duration(cfg.HistoryRetentionDays) * 24 * time.Hour,
		sweepEvery:   time.Duration(cfg.RetentionSweepHours) * time.Hour,
		stop:         make(chan struct{}),
	}
}

// Start launches the background sweep loop. An initial sweep runs
// immediately so restarts do not postpone overdue pruning.
func (w *RetentionWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.sweep()

		ticker := time.NewTicker(w.sweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.sweep()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop halts the sweep loop and waits for an in-flight sweep to finish
func (w *RetentionWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *RetentionWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-w.retention)
	pruned, err := w.locationRepo.PruneHistory(ctx, cutoff)
	if err != nil {
		logger.Error("Location history retention sweep failed", logger.Err(err))
		return
	}
	if pruned > 0 {
		logger.Info("Pruned location history",
			logger.Int64("records", pruned),
			logger.Time("cutoff", cutoff))
	}
}
