// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"k8s.io/utils/clock"
)

// DefaultSyncInterval is used by PackageSyncJob.Start for non-positive intervals.
const DefaultSyncInterval = 30 * time.Second

type packageSyncJob struct {
	refresher Refresher
	clock     clock.WithTicker
	logger    *logger.Logger

	// mu is held across the whole of Start and Stop.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPackageSyncJob creates a packageSyncJob that calls refresher.Refresh on a
// ticker. The job is idle until Start is called.
func NewPackageSyncJob(refresher Refresher, logger *logger.Logger) PackageSyncJob {
	return newPackageSyncJob(refresher, clock.RealClock{}, logger)
}

func newPackageSyncJob(refresher Refresher, clk clock.WithTicker, logger *logger.Logger) *packageSyncJob {
	return &packageSyncJob{
		refresher: refresher,
		clock:     clk,
		logger:    logger,
	}
}

// Start implements PackageSyncJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. Every
// tick refreshes in its own goroutine, so a slow fetch never delays the
// ticker. The goroutines exit when ctx is cancelled or Stop is called.
func (j *packageSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	ticker := j.clock.NewTicker(interval)
	j.logger.Debug().Dur("interval", interval).Msg("package sync job started")

	go func() {
		defer j.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C():
				j.wg.Add(1)
				go func() {
					defer j.wg.Done()
					j.refresh(jobCtx)
				}()
			}
		}
	}()
}

func (j *packageSyncJob) refresh(ctx context.Context) {
	err := j.refresher.Refresh(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Msg("scheduled refresh skipped: sync in progress")
	case errors.Is(err, ErrSyncClosed), ctx.Err() != nil:
		j.logger.Debug().Err(err).Msg("scheduled refresh cancelled")
	default:
		j.logger.Warn().Err(err).Msg("scheduled refresh failed")
	}
}

// Stop implements PackageSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine and all refreshes it started have
// exited. Safe to call when the job is not running (no-op in that case).
func (j *packageSyncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

// stopLocked cancels the running loop and waits for it. j.mu must be held.
func (j *packageSyncJob) stopLocked() {
	cancel := j.cancel
	j.cancel = nil

	if cancel != nil {
		cancel()
		j.logger.Debug().Msg("package sync job stopped")
	}
	j.wg.Wait()
}
