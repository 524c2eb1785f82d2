// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// serverUnavailableHint returns a hint for transport failures and "" for
// everything else.
func serverUnavailableHint(message, baseURL string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the server at " + baseURL + " is unreachable"
	}

	return ""
}

var errNoPicture = errors.New("selected package has no picture")
