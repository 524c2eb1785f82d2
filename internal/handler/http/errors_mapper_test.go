// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-safari-sync/internal/store"
	"github.com/MKhiriev/go-safari-sync/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "wrapped deadline", err: fmt.Errorf("listing: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "canceled", err: context.Canceled, want: http.StatusServiceUnavailable},
		{name: "read failure", err: store.ErrReadingPackagesFile, want: http.StatusInternalServerError},
		{name: "decode failure", err: store.ErrDecodingPackagesFile, want: http.StatusInternalServerError},
		{name: "duplicate id", err: fmt.Errorf("package at index 3: %w", validators.ErrDuplicateID), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
