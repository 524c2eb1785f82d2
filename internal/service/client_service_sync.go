// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-safari-sync/internal/adapter"
	"github.com/MKhiriev/go-safari-sync/internal/logger"
	"github.com/MKhiriev/go-safari-sync/internal/utils"
	"github.com/MKhiriev/go-safari-sync/models"
	"k8s.io/utils/clock"
)

type packageSyncService struct {
	packageAdapter adapter.PackageAdapter
	clock          clock.PassiveClock
	logger         *logger.Logger

	mu      sync.Mutex
	state   models.SyncState
	changes chan struct{}
	closed  bool

	// lifetime is cancelled by Close and bounds every fetch.
	lifetime context.Context
	cancel   context.CancelFunc
}

// NewPackageSyncService creates a PackageSyncService in models.PhaseIdle with
// an empty package list.
func NewPackageSyncService(packageAdapter adapter.PackageAdapter, logger *logger.Logger) PackageSyncService {
	return newPackageSyncService(packageAdapter, clock.RealClock{}, logger)
}

func newPackageSyncService(packageAdapter adapter.PackageAdapter, clk clock.PassiveClock, logger *logger.Logger) *packageSyncService {
	lifetime, cancel := context.WithCancel(context.Background())

	return &packageSyncService{
		packageAdapter: packageAdapter,
		clock:          clk,
		logger:         logger,
		state:          models.SyncState{Phase: models.PhaseIdle},
		changes:        make(chan struct{}, 1),
		lifetime:       lifetime,
		cancel:         cancel,
	}
}

// Load implements PackageSyncService.
func (s *packageSyncService) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSyncClosed
	}
	if s.state.Phase != models.PhaseIdle {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	prev := s.state
	s.setPhaseLocked(models.PhaseInitialLoading)
	s.mu.Unlock()

	return s.fetch(ctx, prev)
}

// Refresh implements PackageSyncService.
func (s *packageSyncService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSyncClosed
	}
	if s.state.Phase.InFlight() {
		s.mu.Unlock()
		return ErrSyncInProgress
	}
	prev := s.state
	s.setPhaseLocked(models.PhaseRefreshing)
	s.mu.Unlock()

	return s.fetch(ctx, prev)
}

// fetch runs the adapter call outside the lock and applies its outcome.
// prev is the state before the in-flight phase was entered; it is restored
// when the caller abandons the fetch by cancelling ctx.
func (s *packageSyncService) fetch(ctx context.Context, prev models.SyncState) error {
	fetchCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifetime, cancel)
	defer func() {
		stop()
		cancel()
	}()

	requestID, ok := utils.GetRequestIDFromContext(fetchCtx)
	if !ok {
		requestID = utils.NewRequestID()
		fetchCtx = utils.WithRequestID(fetchCtx, requestID)
	}

	items, err := s.packageAdapter.FetchPackages(fetchCtx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Debug().
			Str("request_id", requestID).
			Err(err).
			Msg("sync service closed, fetch result discarded")
		return ErrSyncClosed
	}

	if err != nil && ctx.Err() != nil {
		s.state.LastError = prev.LastError
		s.setPhaseLocked(prev.Phase)
		s.logger.Debug().
			Str("request_id", requestID).
			Err(err).
			Stringer("restored_phase", prev.Phase).
			Msg("fetch abandoned by caller, phase restored")
		return err
	}

	if err != nil {
		s.state.LastError = err.Error()
		s.setPhaseLocked(models.PhaseErrored)
		s.logger.Warn().
			Str("request_id", requestID).
			Err(err).
			Int("kept_items", len(s.state.Items)).
			Msg("package sync failed")
		return err
	}

	s.state.Items = models.ClonePackages(items)
	s.state.LastError = ""
	s.state.LastSyncedAt = s.clock.Now()
	s.setPhaseLocked(models.PhaseReady)
	s.logger.Debug().
		Str("request_id", requestID).
		Int("items", len(s.state.Items)).
		Msg("package sync succeeded")

	return nil
}

// setPhaseLocked moves the state to phase and notifies readers. s.mu must be held.
func (s *packageSyncService) setPhaseLocked(phase models.Phase) {
	from := s.state.Phase
	s.state.Phase = phase
	if phase != models.PhaseErrored {
		s.state.LastError = ""
	}

	s.logger.Debug().
		Stringer("from", from).
		Stringer("to", phase).
		Msg("sync phase changed")

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// State implements PackageSyncService.
func (s *packageSyncService) State() models.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Changes implements PackageSyncService.
func (s *packageSyncService) Changes() <-chan struct{} {
	return s.changes
}

// Close implements PackageSyncService.
func (s *packageSyncService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.changes)
	s.mu.Unlock()

	s.cancel()
	s.logger.Debug().Msg("sync service closed")
}
