// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// NewClientWorkers builds the worker set of the polling client.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return NewWorkers(logger, NewPackageSyncWorker(services.PackageSyncJob, cfg.SyncInterval))
}

// Start starts the workers in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	if w.logger != nil {
		w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	if w.logger != nil {
		w.logger.Debug().Int("count", len(w.workers)).Msg("workers stopped")
	}
}

// packageSyncWorker runs the package polling job with a fixed interval.
type packageSyncWorker struct {
	job      service.PackageSyncJob
	interval time.Duration
}

func NewPackageSyncWorker(job service.PackageSyncJob, interval time.Duration) Worker {
	return &packageSyncWorker{job: job, interval: interval}
}

func (p *packageSyncWorker) Start(ctx context.Context) {
	p.job.Start(ctx, p.interval)
}

func (p *packageSyncWorker) Stop() {
	p.job.Stop()
}
