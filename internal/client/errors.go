// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoServices = errors.New("client services are not configured")
	ErrNoUI       = errors.New("client ui is not configured")
)
