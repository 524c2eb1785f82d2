// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         http.StatusServiceUnavailable,

	store.ErrReadingPackagesFile:  http.StatusInternalServerError,
	store.ErrDecodingPackagesFile: http.StatusInternalServerError,

	validators.ErrInvalidID:         http.StatusInternalServerError,
	validators.ErrEmptyName:         http.StatusInternalServerError,
	validators.ErrNegativeGroupSize: http.StatusInternalServerError,
	validators.ErrGroupSizeRange:    http.StatusInternalServerError,
	validators.ErrDuplicateID:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
