// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the polling client application runtime.
//
// It wires the package sync service, the background polling worker and a
// presentation consumer (terminal UI or headless log output) into a single
// process lifecycle.
package client
