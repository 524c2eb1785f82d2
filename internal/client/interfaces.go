// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is a presentation consumer of the package sync state.
type UI interface {
	// Run renders state changes until the user quits or ctx is done.
	Run(ctx context.Context) error
}
