// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// stateChangedMsg is delivered after the sync service reported a transition.
type stateChangedMsg struct{}

// changesClosedMsg is delivered once the sync service has been closed.
type changesClosedMsg struct{}

type refreshDoneMsg struct {
	err error
}

type copiedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}
