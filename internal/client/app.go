// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-safari-sync/internal/config"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
	"github.com/MKhiriev/go-safari-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.PackageSyncService == nil || services.PackageSyncJob == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewClientWorkers(services, cfg, logger),
		logger:   logger,
	}, nil
}

// Run activates the package sync (polling worker plus the initial load in
// the background), blocks in the UI, and tears everything down when the UI
// returns: workers are stopped first, then the sync service is closed, and
// only then is the run context cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)

	loadDone := make(chan struct{})
	go func() {
		defer close(loadDone)
		a.load(ctx)
	}()

	uiErr := a.ui.Run(ctx)

	a.workers.Stop()
	a.services.PackageSyncService.Close()
	cancel()
	<-loadDone

	a.logger.Info().Msg("client stopped")
	return uiErr
}

func (a *App) load(ctx context.Context) {
	err := a.services.PackageSyncService.Load(ctx)
	switch {
	case err == nil:
		a.logger.Info().Msg("initial package load finished")
	case errors.Is(err, service.ErrSyncClosed), errors.Is(err, service.ErrAlreadyLoaded), ctx.Err() != nil:
		a.logger.Debug().Err(err).Msg("initial package load skipped")
	default:
		a.logger.Warn().Err(err).Msg("initial package load failed")
	}
}
