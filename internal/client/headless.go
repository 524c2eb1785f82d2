// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/service"
	"github.com/MKhiriev/go-safari-sync/models"
)

// headlessUI logs every package sync state change instead of drawing it.
type headlessUI struct {
	syncService service.PackageSyncService
	logger      *logger.Logger
}

func NewHeadlessUI(syncService service.PackageSyncService, logger *logger.Logger) UI {
	return &headlessUI{syncService: syncService, logger: logger}
}

// Run returns nil when ctx is done or the Changes channel is closed.
func (h *headlessUI) Run(ctx context.Context) error {
	changes := h.syncService.Changes()
	h.logState(h.syncService.State())

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			h.logState(h.syncService.State())
		}
	}
}

func (h *headlessUI) logState(state models.SyncState) {
	event := h.logger.Info()
	if state.Phase == models.PhaseErrored {
		event = h.logger.Warn().Str("last_error", state.LastError)
	}
	if !state.LastSyncedAt.IsZero() {
		event = event.Time("last_synced_at", state.LastSyncedAt)
	}
	event.
		Str("phase", state.Phase.String()).
		Int("packages", len(state.Items)).
		Msg("safari packages state")
}
