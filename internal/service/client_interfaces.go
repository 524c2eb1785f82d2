// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/package_sync_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-safari-sync/models"
)

// Refresher is the single action the polling job needs from the sync service.
type Refresher interface {
	// Refresh re-fetches the package list. It returns ErrSyncInProgress
	// without fetching when another fetch is already running.
	Refresh(ctx context.Context) error
}

// PackageSyncService owns the client-side copy of the safari package list and
// the phase of its synchronisation with the server.
//
// At most one fetch is in flight at any time. Items are replaced only as a
// whole after a successful fetch; a failed fetch keeps the previous items and
// moves the service to models.PhaseErrored.
type PackageSyncService interface {
	Refresher

	// Load performs the initial fetch. It is accepted only in
	// models.PhaseIdle, otherwise ErrAlreadyLoaded is returned without
	// fetching. The fetch error, if any, is returned after the state has been
	// updated.
	Load(ctx context.Context) error

	// State returns a copy of the current state. The returned value shares no
	// memory with the service.
	State() models.SyncState

	// Changes returns a channel that receives a value after every state
	// transition. Notifications are coalesced: a slow reader sees at least one
	// value after the latest transition. The channel is closed by Close.
	Changes() <-chan struct{}

	// Close cancels in-flight fetches, discards their results, and closes the
	// Changes channel. Load and Refresh return ErrSyncClosed afterwards. Close
	// is idempotent.
	Close()
}

// PackageSyncJob defines the contract for a background worker that
// periodically calls Refresh.
type PackageSyncJob interface {
	// Start launches the background polling goroutine. It refreshes every
	// interval, defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it and
	// every refresh it started have fully terminated.
	Stop()
}
