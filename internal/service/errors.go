// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is returned by Refresh when a fetch is already running.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrAlreadyLoaded is returned by Load outside of the Idle phase.
	ErrAlreadyLoaded = errors.New("initial load already performed")
	// ErrSyncClosed is returned after the sync service has been closed.
	ErrSyncClosed = errors.New("sync service is closed")

	ErrNoPackageStorage = errors.New("no package storage provided")
)
