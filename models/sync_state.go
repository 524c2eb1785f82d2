// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Phase is the discrete status of the package synchronisation.
type Phase string

const (
	// PhaseIdle means nothing has been fetched yet.
	PhaseIdle Phase = "Idle"

	// PhaseInitialLoading means the first fetch is in flight.
	PhaseInitialLoading Phase = "InitialLoading"

	// PhaseReady means the last fetch succeeded.
	PhaseReady Phase = "Ready"

	// PhaseRefreshing means a refresh fetch is in flight.
	PhaseRefreshing Phase = "Refreshing"

	// PhaseErrored means the last fetch failed.
	PhaseErrored Phase = "Errored"
)

// InFlight reports whether a fetch is running in this phase.
func (p Phase) InFlight() bool {
	return p == PhaseInitialLoading || p == PhaseRefreshing
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}

// SyncState is a read-only snapshot of the synchronised package list.
//
// Items is replaced only as a whole after a successful fetch; a failed fetch
// keeps the previous Items and records LastError.
type SyncState struct {
	// Items holds the packages in server response order.
	Items []SafariPackage

	// Phase is the current synchronisation phase.
	Phase Phase

	// LastError is the message of the last failed fetch. It is non-empty only
	// when Phase is PhaseErrored.
	LastError string

	// LastSyncedAt is the time of the last successful fetch, zero if none.
	LastSyncedAt time.Time
}

// Data returns the current package list.
func (s SyncState) Data() []SafariPackage {
	return s.Items
}

// IsLoading reports whether the initial fetch is running.
func (s SyncState) IsLoading() bool {
	return s.Phase == PhaseInitialLoading
}

// IsRefreshing reports whether a refresh fetch is running.
func (s SyncState) IsRefreshing() bool {
	return s.Phase == PhaseRefreshing
}

// Error returns the last error message or an empty string.
func (s SyncState) Error() string {
	return s.LastError
}

// Clone returns a copy of s that shares no memory with it.
func (s SyncState) Clone() SyncState {
	dup := s
	dup.Items = ClonePackages(s.Items)
	return dup
}

// ClonePackages copies the slice of packages. nil and empty input both yield nil.
func ClonePackages(items []SafariPackage) []SafariPackage {
	if len(items) == 0 {
		return nil
	}
	return slices.Clone(items)
}
