// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the safari package list in the terminal.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
	"github.com/MKhiriev/go-safari-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoSyncService = errors.New("package sync service is not configured")

// Options holds what the view needs besides the sync service.
type Options struct {
	// BaseURL resolves relative picture references.
	BaseURL string
	// SyncInterval is shown in the footer.
	SyncInterval time.Duration
	// BuildInfo is shown in the about window.
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	syncService service.PackageSyncService
	opts        Options
	logger      *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PackageSyncService == nil {
		return nil, ErrNoSyncService
	}
	if opts.SyncInterval <= 0 {
		opts.SyncInterval = service.DefaultSyncInterval
	}
	return &TUI{syncService: services.PackageSyncService, opts: opts, logger: logger}, nil
}

// Run blocks until the user quits, the sync service is closed or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newPackagesModel(ctx, t.syncService, t.opts)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Msg("tui stopped by context")
		return nil
	}
	return err
}
